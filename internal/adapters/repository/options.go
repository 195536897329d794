package repository

import "github.com/okian/mergington/internal/domain/activity"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithActivities seeds the store with the given activities instead of the
// built-in baseline. The map is copied. An empty map is ignored.
func WithActivities(seed map[string]activity.Activity) Option {
	return func(s *MemoryStore) {
		if len(seed) > 0 {
			s.activities = activity.CloneAll(seed)
		}
	}
}
