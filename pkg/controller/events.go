package controller

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/reminder-tracker/pkg/sorter"
	"github.com/rs/zerolog/log"
)

func (c *Controller) initEvents() {
	c.events = map[rune]KeyEvent{}

	c.initReminderEvents(c.events)
	c.initMoveEvents(c.events)
	c.initSortEvents(c.events)
	c.initExitEvent(c.events)
}

func (c *Controller) getExitAction() func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		log.Info().Msg("terminating application")

		c.app.Stop()

		return nil
	}
}

func (c *Controller) initExitEvent(events map[rune]KeyEvent) {
	events[KeyQuit] = KeyEvent{
		Description: "Exit",
		Action:      c.getExitAction(),
	}
}

func (c *Controller) initReminderEvents(events map[rune]KeyEvent) {
	events[KeyNew] = KeyEvent{
		Description: "New",
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.session.CancelEdit()
			c.switchToForm()

			return nil
		},
	}

	events[KeyEdit] = KeyEvent{
		Description: "Edit",
		Enabled:     c.hasSelection,
		Action: func(key *tcell.EventKey) *tcell.EventKey {
			c.startEdit()

			return nil
		},
	}

	events[KeyComplete] = KeyEvent{
		Description: "Complete",
		Label: func() string {
			if row := c.selectedRow(); row != nil {
				return row.CompleteLabel
			}

			return "Complete"
		},
		Enabled: c.hasSelection,
		Action: c.getReminderAction("toggle complete", func(id int64) (bool, error) {
			return c.session.ToggleComplete(c.ctx, id)
		}),
	}

	events[KeyDelete] = KeyEvent{
		Description: "Delete",
		Enabled:     c.hasSelection,
		Action: c.getReminderAction("delete", func(id int64) (bool, error) {
			return c.session.Delete(c.ctx, id)
		}),
	}
}

func (c *Controller) initMoveEvents(events map[rune]KeyEvent) {
	events[KeyMoveUp] = KeyEvent{
		Description: "Move Up",
		Enabled: func() bool {
			row := c.selectedRow()

			return row != nil && row.CanMoveUp
		},
		Action: c.getReminderAction("move up", func(id int64) (bool, error) {
			return c.session.MoveUp(c.ctx, id)
		}),
	}

	events[KeyMoveDown] = KeyEvent{
		Description: "Move Down",
		Enabled: func() bool {
			row := c.selectedRow()

			return row != nil && row.CanMoveDown
		},
		Action: c.getReminderAction("move down", func(id int64) (bool, error) {
			return c.session.MoveDown(c.ctx, id)
		}),
	}
}

func (c *Controller) getSortAction(key sorter.Key) func(*tcell.EventKey) *tcell.EventKey {
	return func(evt *tcell.EventKey) *tcell.EventKey {
		c.session.SetSort(key)
		c.refresh()

		return nil
	}
}

func (c *Controller) initSortEvents(events map[rune]KeyEvent) {
	events[KeySortDate] = KeyEvent{
		Description: sortLabels[sorter.KeyDate],
		Label:       func() string { return c.session.SortLabel(sorter.KeyDate) },
		Action:      c.getSortAction(sorter.KeyDate),
	}

	events[KeySortPriority] = KeyEvent{
		Description: sortLabels[sorter.KeyPriority],
		Label:       func() string { return c.session.SortLabel(sorter.KeyPriority) },
		Action:      c.getSortAction(sorter.KeyPriority),
	}
}

// getReminderAction wraps an operation on the selected reminder; with nothing selected it does
// nothing.
func (c *Controller) getReminderAction(name string, op func(id int64) (bool, error)) func(*tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		row := c.selectedRow()
		if row == nil {
			return nil
		}

		ok, err := op(row.Reminder.ID)
		if err != nil {
			log.Warn().Err(err).Msgf("error while trying to %s reminder '%s'", name, row.Reminder.Text)

			return nil
		}

		log.Debug().Bool("changed", ok).Int64("id", row.Reminder.ID).Msg(name)

		c.refresh()

		return nil
	}
}
