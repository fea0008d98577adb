package controller

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/reminder-tracker/pkg/db"
	"github.com/rivo/tview"
)

const (
	textExpansion  = 2
	notesExpansion = 3
)

// priorityColors highlights priorities so that urgent reminders are easier to spot.
func priorityColors() map[string]tcell.Color {
	return map[string]tcell.Color{
		db.PriorityHigh:   tcell.ColorRed,
		db.PriorityMedium: tcell.ColorOrange,
		db.PriorityLow:    tcell.ColorGreen,
	}
}

// ReminderContent implements tview.TableContent, which tview.Table uses to update data.
type ReminderContent struct {
	tview.TableContentReadOnly
	rows []Row
}

// SetRows replaces the rows shown in the table.
func (s *ReminderContent) SetRows(rows []Row) {
	s.rows = rows
}

// Row returns the row for the given table row, skipping the header, or nil if none.
func (s *ReminderContent) Row(row int) *Row {
	if idx := row - 1; idx >= 0 && idx < len(s.rows) {
		return &s.rows[idx]
	}

	return nil
}

// RowFor returns the table row showing the reminder with the given id, or -1.
func (s *ReminderContent) RowFor(id int64) int {
	for i, r := range s.rows {
		if r.Reminder.ID == id {
			return i + 1
		}
	}

	return -1
}

// GetCell returns the cell at the given position or nil if no cell.
func (s *ReminderContent) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		switch col {
		case 0:
			return tview.NewTableCell("reminder").SetExpansion(textExpansion).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 1:
			return tview.NewTableCell("due").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 2:
			return tview.NewTableCell("priority").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 3:
			return tview.NewTableCell("notes").SetExpansion(notesExpansion).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		}
	}

	r := s.Row(row)
	if r == nil {
		return nil
	}

	var cell *tview.TableCell

	switch col {
	case 0:
		cell = tview.NewTableCell(r.Reminder.Text).SetExpansion(textExpansion).SetReference(r.Reminder.ID)
	case 1:
		cell = tview.NewTableCell(r.Reminder.Date).SetExpansion(1)
	case 2:
		cell = tview.NewTableCell(r.Priority).SetExpansion(1)
		if color, ok := priorityColors()[r.Reminder.Priority]; ok {
			cell.SetTextColor(color)
		}
	case 3:
		cell = tview.NewTableCell(r.Reminder.Notes).SetExpansion(notesExpansion)
	default:
		return nil
	}

	if r.Reminder.Completed {
		cell.SetTextColor(tcell.ColorGray).SetAttributes(tcell.AttrStrikeThrough)
	}

	return cell
}

// GetRowCount returns the number of rows in the table.
func (s *ReminderContent) GetRowCount() int {
	return len(s.rows) + 1
}

// GetColumnCount returns the number of columns in the table.
func (s *ReminderContent) GetColumnCount() int {
	return 4
}
