package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student is already signed up")
	ErrNotRegistered     = errors.New("student is not signed up for this activity")
)
