package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/matt-steen/reminder-tracker/pkg/db"
	"github.com/matt-steen/reminder-tracker/pkg/sorter"
	"github.com/rs/zerolog/log"
)

// Store is the persistence the session works against; *db.Database implements it.
type Store interface {
	Load(ctx context.Context) ([]db.Reminder, error)
	FindReminder(ctx context.Context, id int64) (*db.Reminder, error)
	NewReminder(ctx context.Context, fields db.Fields) (*db.Reminder, error)
	UpdateReminder(ctx context.Context, id int64, fields db.Fields) (bool, error)
	ToggleComplete(ctx context.Context, id int64) (bool, error)
	DeleteReminder(ctx context.Context, id int64) (bool, error)
	MoveUp(ctx context.Context, id int64) (bool, error)
	MoveDown(ctx context.Context, id int64) (bool, error)
}

var sortLabels = map[sorter.Key]string{
	sorter.KeyDate:     "Sort by Due Date",
	sorter.KeyPriority: "Sort by Priority",
}

const (
	submitAddLabel  = "Add Reminder"
	submitSaveLabel = "Save Changes"
)

// Session holds the UI state that isn't persisted: the active sort and the reminder being edited,
// if any. Only the session changes the sort state.
type Session struct {
	store   Store
	sort    sorter.State
	editing *int64
}

// Row is the display projection of a single reminder.
type Row struct {
	Reminder db.Reminder
	// Priority is the capitalized display form.
	Priority      string
	CompleteLabel string
	// CanMoveUp and CanMoveDown reflect the stored order, not the displayed one.
	CanMoveUp   bool
	CanMoveDown bool
}

// NewSession creates a Session with no active sort and nothing being edited.
func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Sort returns the active sort state.
func (s *Session) Sort() sorter.State {
	return s.sort
}

// SetSort activates the sort for key, flipping its direction if it is already active.
func (s *Session) SetSort(key sorter.Key) {
	s.sort = s.sort.Toggle(key)

	log.Debug().Str("key", s.sort.Key.String()).Bool("ascending", s.sort.Ascending).Msg("sort changed")
}

// SortLabel returns the label for the sort control of key, showing the direction when it is active.
func (s *Session) SortLabel(key sorter.Key) string {
	label := sortLabels[key]
	if key == sorter.KeyNone || s.sort.Key != key {
		return label
	}

	direction := "asc"
	if !s.sort.Ascending {
		direction = "desc"
	}

	return fmt.Sprintf("%s (%s)", label, direction)
}

// Editing returns the id of the reminder being edited.
func (s *Session) Editing() (int64, bool) {
	if s.editing == nil {
		return 0, false
	}

	return *s.editing, true
}

// SubmitLabel returns the label of the form's submit control.
func (s *Session) SubmitLabel() string {
	if s.editing != nil {
		return submitSaveLabel
	}

	return submitAddLabel
}

// StartEdit returns the fields of the reminder with the given id and remembers it as the one being
// edited, so that the next Submit updates it. It returns false if there is no such reminder.
func (s *Session) StartEdit(ctx context.Context, id int64) (db.Fields, bool, error) {
	reminder, err := s.store.FindReminder(ctx, id)
	if err != nil {
		return db.Fields{}, false, err
	}

	if reminder == nil {
		return db.Fields{}, false, nil
	}

	s.editing = &id

	return reminder.Fields(), true, nil
}

// CancelEdit forgets the reminder being edited.
func (s *Session) CancelEdit() {
	s.editing = nil
}

// Submit saves the form fields. While editing, the edited reminder is updated in place and keeps
// its completed flag; otherwise a new reminder is appended. Blank text is rejected with
// db.ErrEmptyText and nothing changes.
func (s *Session) Submit(ctx context.Context, fields db.Fields) (*db.Reminder, error) {
	fields.Text = strings.TrimSpace(fields.Text)
	fields.Notes = strings.TrimSpace(fields.Notes)

	if fields.Text == "" {
		return nil, db.ErrEmptyText
	}

	if s.editing != nil {
		id := *s.editing

		ok, err := s.store.UpdateReminder(ctx, id, fields)
		if err != nil {
			return nil, err
		}

		s.editing = nil

		if ok {
			return s.store.FindReminder(ctx, id)
		}

		log.Warn().Int64("id", id).Msg("edited reminder no longer exists; adding it as a new one")
	}

	return s.store.NewReminder(ctx, fields)
}

// ToggleComplete flips the completed flag of the reminder with the given id.
func (s *Session) ToggleComplete(ctx context.Context, id int64) (bool, error) {
	return s.store.ToggleComplete(ctx, id)
}

// Delete removes the reminder with the given id.
func (s *Session) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.store.DeleteReminder(ctx, id)
	if err != nil {
		return false, err
	}

	if editing, isEditing := s.Editing(); ok && isEditing && editing == id {
		s.editing = nil
	}

	return ok, nil
}

// MoveUp moves the reminder one place up in the stored order and switches back to manual order.
func (s *Session) MoveUp(ctx context.Context, id int64) (bool, error) {
	return s.move(ctx, id, s.store.MoveUp)
}

// MoveDown moves the reminder one place down in the stored order and switches back to manual order.
func (s *Session) MoveDown(ctx context.Context, id int64) (bool, error) {
	return s.move(ctx, id, s.store.MoveDown)
}

func (s *Session) move(ctx context.Context, id int64, op func(context.Context, int64) (bool, error)) (bool, error) {
	ok, err := op(ctx, id)
	if err != nil {
		return false, err
	}

	// a manual reorder must stay visible, so drop any sort
	s.sort = sorter.State{}

	return ok, nil
}

// Rows loads the reminders and projects them in display order.
func (s *Session) Rows(ctx context.Context) ([]Row, error) {
	stored, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	positions := make(map[int64]int, len(stored))
	for i, r := range stored {
		positions[r.ID] = i
	}

	rows := make([]Row, 0, len(stored))

	for _, r := range sorter.Sort(stored, s.sort) {
		completeLabel := "Complete"
		if r.Completed {
			completeLabel = "Undo"
		}

		pos := positions[r.ID]

		rows = append(rows, Row{
			Reminder:      r,
			Priority:      db.Capitalize(r.Priority),
			CompleteLabel: completeLabel,
			CanMoveUp:     pos > 0,
			CanMoveDown:   pos < len(stored)-1,
		})
	}

	return rows, nil
}
