package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/okian/mergington/internal/domain/activity"
	"github.com/okian/mergington/pkg/metrics"
)

// MemoryStore is a mutex-guarded, in-memory Store. Rosters keep insertion
// order.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]activity.Activity
}

// NewMemoryStore constructs a store holding a fresh baseline unless
// WithActivities is given.
func NewMemoryStore(_ context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		activities: activity.Baseline(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.publishGauges()
	return s
}

// List implements Store.List.
func (s *MemoryStore) List(_ context.Context) map[string]activity.Activity {
	defer observe("list", time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	return activity.CloneAll(s.activities)
}

// Get implements Store.Get.
func (s *MemoryStore) Get(_ context.Context, name string) (activity.Activity, error) {
	defer observe("get", time.Now())

	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.activities[name]
	if !ok {
		return activity.Activity{}, ErrNotFound
	}
	return a.Clone(), nil
}

// Signup implements Store.Signup.
func (s *MemoryStore) Signup(_ context.Context, name, email string) error {
	defer observe("signup", time.Now())

	s.mu.Lock()
	a, ok := s.activities[name]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	if a.Has(email) {
		s.mu.Unlock()
		return ErrAlreadyRegistered
	}
	a.Participants = append(a.Participants, email)
	s.activities[name] = a
	s.mu.Unlock()

	s.publishGauges()
	return nil
}

// Unregister implements Store.Unregister.
func (s *MemoryStore) Unregister(_ context.Context, name, email string) error {
	defer observe("unregister", time.Now())

	s.mu.Lock()
	a, ok := s.activities[name]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotRegistered
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	s.activities[name] = a
	s.mu.Unlock()

	s.publishGauges()
	return nil
}

// Count implements Store.Count.
func (s *MemoryStore) Count(_ context.Context) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	participants := 0
	for _, a := range s.activities {
		participants += len(a.Participants)
	}
	return len(s.activities), participants
}

func (s *MemoryStore) publishGauges() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for name, a := range s.activities {
		metrics.UpdateActivityParticipants(name, len(a.Participants))
		total += len(a.Participants)
	}
	metrics.UpdateActivitiesTotal(len(s.activities))
	metrics.UpdateParticipantsTotal(total)
}

func observe(op string, start time.Time) {
	metrics.RecordRegistryLatency(op, float64(time.Since(start).Microseconds())/1000)
}
