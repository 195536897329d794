// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/okian/mergington/internal/adapters/repository"
	"github.com/okian/mergington/internal/domain/activity"
	"github.com/okian/mergington/pkg/logger"
	"github.com/okian/mergington/pkg/metrics"
)

// Service owns one activity registry and exposes the sign-up operations.
type Service struct {
	mu sync.RWMutex

	store repository.Store
	seed  map[string]activity.Activity

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore injects a registry, e.g. a pre-populated one in tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithActivities seeds the registry created at Start. Ignored when WithStore
// is used.
func WithActivities(seed map[string]activity.Activity) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the registry. Calling Start twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		s.store = repository.NewMemoryStore(ctx, repository.WithActivities(s.seed))
	}

	activities, participants := s.store.Count(ctx)
	s.started = true
	s.logger.Info(ctx, "activities service started",
		logger.Int("activities", activities),
		logger.Int("participants", participants),
	)

	return nil
}

// Stop marks the service stopped. The registry is kept so a restarted service
// serves the same state; a fresh baseline requires a new Service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "activities service stopped")
}

func (s *Service) registry() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// Activities returns every activity with its current roster.
func (s *Service) Activities(ctx context.Context) (map[string]activity.Activity, error) {
	store, err := s.registry()
	if err != nil {
		return nil, err
	}
	return store.List(ctx), nil
}

// Signup registers email for the named activity and returns a confirmation.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	store, err := s.registry()
	if err != nil {
		return "", err
	}

	if err := store.Signup(ctx, name, email); err != nil {
		metrics.RecordRejection("signup", reason(err))
		s.logger.Info(ctx, "signup rejected",
			logger.String("activity", name),
			logger.String("email", email),
			logger.Error(err),
		)
		return "", err
	}

	metrics.RecordSignup()
	s.logger.Info(ctx, "participant signed up",
		logger.String("activity", name),
		logger.String("email", email),
	)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns a confirmation.
func (s *Service) Unregister(ctx context.Context, name, email string) (string, error) {
	store, err := s.registry()
	if err != nil {
		return "", err
	}

	if err := store.Unregister(ctx, name, email); err != nil {
		metrics.RecordRejection("unregister", reason(err))
		s.logger.Info(ctx, "unregister rejected",
			logger.String("activity", name),
			logger.String("email", email),
			logger.Error(err),
		)
		return "", err
	}

	metrics.RecordUnregister()
	s.logger.Info(ctx, "participant unregistered",
		logger.String("activity", name),
		logger.String("email", email),
	)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		activities, participants := s.store.Count(context.Background())
		stats["activities"] = activities
		stats["participants"] = participants

		metrics.UpdateActivitiesTotal(activities)
		metrics.UpdateParticipantsTotal(participants)
	}

	return stats
}

func reason(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, repository.ErrNotRegistered):
		return "not_registered"
	default:
		return "internal"
	}
}
