package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/mergington/internal/adapters/repository"
	service "github.com/okian/mergington/internal/app"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrMissingEmail = errors.New("missing email query parameter")
)

// Wrap annotates err with the operation that produced it.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// NewKind returns an error of the given kind attributed to op.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind attaches both a kind and the underlying cause to op.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return NewKind(op, kind)
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

type apiError struct {
	status int
	code   string
	detail string
}

// classify maps an error to its HTTP representation. Unknown activities are
// reported as 400 like the other membership errors.
func classify(err error) apiError {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apiError{http.StatusBadRequest, "not_found", "Activity not found"}
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return apiError{http.StatusBadRequest, "already_registered", "Student is already signed up"}
	case errors.Is(err, repository.ErrNotRegistered):
		return apiError{http.StatusBadRequest, "not_registered", "Student is not signed up for this activity"}
	case errors.Is(err, ErrMissingEmail):
		return apiError{http.StatusBadRequest, "bad_request", "Missing email query parameter"}
	case errors.Is(err, ErrBadRequest):
		return apiError{http.StatusBadRequest, "bad_request", http.StatusText(http.StatusBadRequest)}
	case errors.Is(err, service.ErrNotStarted):
		return apiError{http.StatusServiceUnavailable, "unavailable", "Service is not ready"}
	default:
		return apiError{http.StatusInternalServerError, "internal_error", http.StatusText(http.StatusInternalServerError)}
	}
}
