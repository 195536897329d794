// Package repository holds the activity registry and its errors.
package repository

import (
	"context"

	"github.com/okian/mergington/internal/domain/activity"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// List returns every activity keyed by name. The result is a deep copy.
	List(ctx context.Context) map[string]activity.Activity

	// Get returns one activity. Returns ErrNotFound if the name is unknown.
	Get(ctx context.Context, name string) (activity.Activity, error)

	// Signup adds email to the roster of the named activity.
	// Returns ErrNotFound or ErrAlreadyRegistered.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the roster of the named activity.
	// Returns ErrNotFound or ErrNotRegistered.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities and the total number of
	// registrations across them.
	Count(ctx context.Context) (activities, participants int)
}
