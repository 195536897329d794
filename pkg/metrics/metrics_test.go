package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then its collectors should be registered there", func() {
				So(manager, ShouldNotBeNil)
				manager.signups.Inc()
				count, err := testutil.GatherAndCount(registry, "mergington_activities_signups_total")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("school"),
				WithSubsystem("clubs"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metric names should use the namespace and subsystem", func() {
				manager.activitiesTotal.Set(3)
				count, err := testutil.GatherAndCount(registry, "school_clubs_activities")
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)
				So(manager.constLabels["env"], ShouldEqual, "test")
				So(manager.histogramBuckets, ShouldResemble, []float64{1, 5, 10})
			})
		})

		Convey("When passing empty option values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(registry),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "mergington")
				So(manager.subsystem, ShouldEqual, "activities")
				So(manager.histogramBuckets, ShouldNotBeEmpty)
			})
		})
	})
}

func TestRegistryMetrics(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording sign-ups and unregistrations", func() {
			signups := testutil.ToFloat64(globalManager.signups)
			unregs := testutil.ToFloat64(globalManager.unregistrations)

			RecordSignup()
			RecordSignup()
			RecordUnregister()

			Convey("Then the counters should advance", func() {
				So(testutil.ToFloat64(globalManager.signups), ShouldEqual, signups+2)
				So(testutil.ToFloat64(globalManager.unregistrations), ShouldEqual, unregs+1)
			})
		})

		Convey("When recording rejections", func() {
			c := globalManager.rejections.WithLabelValues("signup", "already_registered")
			before := testutil.ToFloat64(c)

			RecordRejection("signup", "already_registered")

			Convey("Then the labelled counter should advance", func() {
				So(testutil.ToFloat64(c), ShouldEqual, before+1)
			})
		})

		Convey("When updating registry gauges", func() {
			UpdateActivitiesTotal(9)
			UpdateParticipantsTotal(15)
			UpdateActivityParticipants("Chess Club", 2)

			Convey("Then the gauges should hold the values", func() {
				So(testutil.ToFloat64(globalManager.activitiesTotal), ShouldEqual, 9)
				So(testutil.ToFloat64(globalManager.participantsTotal), ShouldEqual, 15)
				So(testutil.ToFloat64(globalManager.participantsPerActivity.WithLabelValues("Chess Club")), ShouldEqual, 2)
			})
		})

		Convey("When recording latencies and HTTP metrics", func() {
			So(func() {
				RecordRegistryLatency("signup", 0.2)
				RecordHTTPRequest("activities", "GET", "200")
				RecordHTTPRequestDuration("activities", "GET", "200", 1.5)
				RecordErrorByType("client_error", "medium")
				RecordErrorByEndpoint("signup", "POST", "client_error")
				RecordErrorLatency("http", "client_error", 0.4)
			}, ShouldNotPanic)
		})

		Convey("When updating system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1024 * 1024)
				UpdateSystemGoroutineCount(12)
				RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("Then the registry should be exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			before := testutil.ToFloat64(globalManager.signups)
			done := make(chan bool, 10)

			for i := 0; i < 10; i++ {
				go func() {
					for j := 0; j < 100; j++ {
						RecordSignup()
						RecordHTTPRequest("test", "GET", "200")
					}
					done <- true
				}()
			}

			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then every increment should be counted", func() {
				So(testutil.ToFloat64(globalManager.signups), ShouldEqual, before+1000)
			})
		})
	})
}
