package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrEmptyText is returned when a reminder is saved without any text.
var ErrEmptyText = errors.New("reminder text is required")

// mutate loads the full list, lets change modify it and writes it back if change reports a
// modification. Nothing is written otherwise.
func (d *Database) mutate(ctx context.Context, change func([]Reminder) ([]Reminder, bool)) (bool, error) {
	reminders, err := d.Load(ctx)
	if err != nil {
		return false, err
	}

	reminders, changed := change(reminders)
	if !changed {
		return false, nil
	}

	if err := d.Save(ctx, reminders); err != nil {
		return false, err
	}

	return true, nil
}

// FindReminder returns the reminder with the given id, or nil if there is none.
func (d *Database) FindReminder(ctx context.Context, id int64) (*Reminder, error) {
	reminders, err := d.Load(ctx)
	if err != nil {
		return nil, err
	}

	if i := indexOf(reminders, id); i >= 0 {
		return &reminders[i], nil
	}

	return nil, nil
}

// NewReminder creates a new reminder from the given fields; it is added at the end of the list.
func (d *Database) NewReminder(ctx context.Context, fields Fields) (*Reminder, error) {
	if fields.blank() {
		return nil, ErrEmptyText
	}

	var reminder Reminder

	_, err := d.mutate(ctx, func(reminders []Reminder) ([]Reminder, bool) {
		reminder = Reminder{ID: d.nextID(reminders)}
		reminder.apply(fields)

		return append(reminders, reminder), true
	})
	if err != nil {
		return nil, fmt.Errorf("error adding reminder '%s': %w", fields.Text, err)
	}

	log.Debug().Int64("id", reminder.ID).Msgf("added reminder '%s'", reminder.Text)

	return &reminder, nil
}

// UpdateReminder replaces the editable fields of the reminder with the given id. Its position in
// the list and its completed flag are kept.
func (d *Database) UpdateReminder(ctx context.Context, id int64, fields Fields) (bool, error) {
	if fields.blank() {
		return false, ErrEmptyText
	}

	return d.mutate(ctx, func(reminders []Reminder) ([]Reminder, bool) {
		i := indexOf(reminders, id)
		if i < 0 {
			return reminders, false
		}

		reminders[i].apply(fields)

		return reminders, true
	})
}

// ToggleComplete flips the completed flag of the reminder with the given id.
func (d *Database) ToggleComplete(ctx context.Context, id int64) (bool, error) {
	return d.mutate(ctx, func(reminders []Reminder) ([]Reminder, bool) {
		i := indexOf(reminders, id)
		if i < 0 {
			return reminders, false
		}

		reminders[i].Completed = !reminders[i].Completed

		return reminders, true
	})
}

// DeleteReminder removes the reminder with the given id.
func (d *Database) DeleteReminder(ctx context.Context, id int64) (bool, error) {
	return d.mutate(ctx, func(reminders []Reminder) ([]Reminder, bool) {
		i := indexOf(reminders, id)
		if i < 0 {
			return reminders, false
		}

		return append(reminders[:i], reminders[i+1:]...), true
	})
}

// MoveUp swaps the reminder with the one before it in the stored order.
func (d *Database) MoveUp(ctx context.Context, id int64) (bool, error) {
	return d.mutate(ctx, func(reminders []Reminder) ([]Reminder, bool) {
		i := indexOf(reminders, id)
		if i <= 0 {
			return reminders, false
		}

		reminders[i-1], reminders[i] = reminders[i], reminders[i-1]

		return reminders, true
	})
}

// MoveDown swaps the reminder with the one after it in the stored order.
func (d *Database) MoveDown(ctx context.Context, id int64) (bool, error) {
	return d.mutate(ctx, func(reminders []Reminder) ([]Reminder, bool) {
		i := indexOf(reminders, id)
		if i < 0 || i >= len(reminders)-1 {
			return reminders, false
		}

		reminders[i], reminders[i+1] = reminders[i+1], reminders[i]

		return reminders, true
	})
}
