package smoke

import "errors"

// Sentinel kinds for smoke run errors.
var (
	ErrPrecondition = errors.New("precondition failed")
	ErrStepFailed   = errors.New("smoke step failed")
)
