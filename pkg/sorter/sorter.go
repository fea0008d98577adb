// Package sorter orders reminders for display without touching their stored order.
package sorter

import (
	"sort"

	"github.com/matt-steen/reminder-tracker/pkg/db"
)

// Key selects the field reminders are sorted by.
type Key int

// These constants refer to the sort keys supported by the app.
const (
	KeyNone Key = iota
	KeyDate
	KeyPriority
)

func (k Key) String() string {
	switch k {
	case KeyDate:
		return "date"
	case KeyPriority:
		return "priority"
	default:
		return "none"
	}
}

// ParseKey maps a name produced by Key.String back to its Key. Unknown names map to KeyNone.
func ParseKey(name string) Key {
	switch name {
	case "date":
		return KeyDate
	case "priority":
		return KeyPriority
	default:
		return KeyNone
	}
}

// State is the active display ordering. The zero value means manual order.
type State struct {
	Key       Key
	Ascending bool
}

// Active reports whether a sort is applied on top of the manual order.
func (s State) Active() bool {
	return s.Key != KeyNone
}

// Toggle returns the state after activating the sort for key: the same key flips the direction,
// a different key is selected in ascending order.
func (s State) Toggle(key Key) State {
	if key == KeyNone {
		return State{}
	}

	if s.Key == key {
		return State{Key: key, Ascending: !s.Ascending}
	}

	return State{Key: key, Ascending: true}
}

// PriorityRank orders priorities from high (0) to unset (3). Unknown values rank as unset.
func PriorityRank(priority string) int {
	switch priority {
	case db.PriorityHigh:
		return 0
	case db.PriorityMedium:
		return 1
	case db.PriorityLow:
		return 2
	default:
		return 3
	}
}

// Sort returns a copy of reminders ordered according to state. The input is never modified and
// reminders that compare equal keep their relative order.
func Sort(reminders []db.Reminder, state State) []db.Reminder {
	sorted := make([]db.Reminder, len(reminders))
	copy(sorted, reminders)

	var less func(a, b db.Reminder) bool

	switch state.Key {
	case KeyDate:
		less = func(a, b db.Reminder) bool {
			// unset dates go last in both directions
			if a.Date == "" {
				return false
			}

			if b.Date == "" {
				return true
			}

			if state.Ascending {
				return a.Date < b.Date
			}

			return a.Date > b.Date
		}
	case KeyPriority:
		less = func(a, b db.Reminder) bool {
			if state.Ascending {
				return PriorityRank(a.Priority) < PriorityRank(b.Priority)
			}

			return PriorityRank(a.Priority) > PriorityRank(b.Priority)
		}
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}
