// Package activity defines the extracurricular activity model.
package activity

import "slices"

// Activity is a named offering with its roster. The name is the registry key
// and is not repeated here.
type Activity struct {
	Description     string   `json:"description" koanf:"description"`
	Schedule        string   `json:"schedule" koanf:"schedule"`
	MaxParticipants int      `json:"max_participants" koanf:"max_participants"`
	Participants    []string `json:"participants" koanf:"participants"`
}

// Has reports whether email is on the roster.
func (a Activity) Has(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SpotsLeft returns the remaining capacity, or -1 when no capacity is set.
func (a Activity) SpotsLeft() int {
	if a.MaxParticipants <= 0 {
		return -1
	}
	return a.MaxParticipants - len(a.Participants)
}

// Clone returns a deep copy.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}

// CloneAll deep-copies a registry mapping.
func CloneAll(in map[string]Activity) map[string]Activity {
	out := make(map[string]Activity, len(in))
	for name, a := range in {
		out[name] = a.Clone()
	}
	return out
}

// Duplicates returns the emails listed more than once, in first-seen order.
func (a Activity) Duplicates() []string {
	seen := make(map[string]int, len(a.Participants))
	var dups []string
	for _, email := range a.Participants {
		seen[email]++
		if seen[email] == 2 {
			dups = append(dups, email)
		}
	}
	return dups
}
