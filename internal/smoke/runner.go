// Package smoke drives the sign-up/unregister acceptance scenario against a
// running service.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/okian/mergington/pkg/logger"
)

// Run executes the scenario: sign up, duplicate sign-up, unregister, repeat
// unregister, checking the roster in between. It leaves the roster as it was
// when every step passes.
func Run(ctx context.Context, config *Config) (*Report, error) {
	report := &Report{StartTime: time.Now()}
	defer func() { report.Duration = time.Since(report.StartTime) }()

	log := logger.Get().Named("smoke")
	c := newClient(config.BaseURL, config.Timeout)

	log.Info(ctx, "starting smoke run",
		logger.String("baseURL", config.BaseURL),
		logger.String("activity", config.Activity),
		logger.String("email", config.Email))

	before, err := roster(ctx, c, config.Activity)
	if err != nil {
		return report, err
	}
	if slices.Contains(before, config.Email) {
		return report, fmt.Errorf("%w: %s is already signed up for %s", ErrPrecondition, config.Email, config.Activity)
	}

	steps := []struct {
		name   string
		method string
		want   int
		// member is whether the email must be on the roster afterwards
		member bool
	}{
		{"signup", http.MethodPost, http.StatusOK, true},
		{"duplicate signup", http.MethodPost, http.StatusBadRequest, true},
		{"unregister", http.MethodDelete, http.StatusOK, false},
		{"repeat unregister", http.MethodDelete, http.StatusBadRequest, false},
	}

	for _, s := range steps {
		start := time.Now()
		got, detail, err := c.membership(ctx, s.method, config.Activity, config.Email)
		if err != nil {
			return report, err
		}
		step := Step{Name: s.name, Want: s.want, Got: got, Detail: detail, Duration: time.Since(start)}

		current, err := roster(ctx, c, config.Activity)
		if err != nil {
			return report, err
		}
		if slices.Contains(current, config.Email) != s.member {
			step.Detail = fmt.Sprintf("roster membership is %t, want %t", !s.member, s.member)
			step.Got = -1
		}
		report.Steps = append(report.Steps, step)

		log.Info(ctx, "smoke step",
			logger.String("step", step.Name),
			logger.Int("want", step.Want),
			logger.Int("got", step.Got),
			logger.String("detail", step.Detail))
	}

	after, err := roster(ctx, c, config.Activity)
	if err != nil {
		return report, err
	}
	if !slices.Equal(before, after) {
		report.Steps = append(report.Steps, Step{Name: "roster restored", Want: 1, Got: 0,
			Detail: fmt.Sprintf("roster %v, want %v", after, before)})
	}

	if failed := report.Failed(); len(failed) > 0 {
		errs := make([]error, 0, len(failed))
		for _, f := range failed {
			errs = append(errs, fmt.Errorf("%w: %s: want %d, got %d (%s)", ErrStepFailed, f.Name, f.Want, f.Got, f.Detail))
		}
		return report, errors.Join(errs...)
	}

	log.Info(ctx, "smoke run passed", logger.Int("steps", len(report.Steps)))
	return report, nil
}

func roster(ctx context.Context, c *client, name string) ([]string, error) {
	all, err := c.activities(ctx)
	if err != nil {
		return nil, err
	}
	a, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("%w: activity %q not listed", ErrPrecondition, name)
	}
	return a.Participants, nil
}
