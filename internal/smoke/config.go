package smoke

import "time"

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Activity string        // Activity to exercise; must exist in the registry
	Email    string        // Email to sign up; must not already be on the roster
	Timeout  time.Duration // HTTP request timeout
}

// Step records one request of the scenario and its outcome.
type Step struct {
	Name     string
	Want     int
	Got      int
	Detail   string
	Duration time.Duration
}

// Passed reports whether the step returned the expected status.
func (s Step) Passed() bool { return s.Want == s.Got }

// Report is the outcome of a run.
type Report struct {
	Steps     []Step
	StartTime time.Time
	Duration  time.Duration
}

// Failed returns the steps that did not pass.
func (r *Report) Failed() []Step {
	var out []Step
	for _, s := range r.Steps {
		if !s.Passed() {
			out = append(out, s)
		}
	}
	return out
}
