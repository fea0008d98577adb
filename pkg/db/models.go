package db

import "strings"

// These constants refer to the priorities supported by the app. An empty priority means unset.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
	PriorityNone   = ""
)

// Reminder is a single entry in the reminder list. The json tags define the persisted layout.
type Reminder struct {
	// ID is derived from the creation timestamp and never reassigned.
	ID   int64  `json:"id"`
	Text string `json:"text"`
	// Date is a sortable date string (YYYY-MM-DD); empty means no due date.
	Date      string `json:"date"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes"`
	Completed bool   `json:"completed"`
}

// Fields holds the user editable parts of a Reminder.
type Fields struct {
	Text     string
	Date     string
	Priority string
	Notes    string
}

// Fields returns the editable parts of the reminder.
func (r Reminder) Fields() Fields {
	return Fields{
		Text:     r.Text,
		Date:     r.Date,
		Priority: r.Priority,
		Notes:    r.Notes,
	}
}

func (r *Reminder) apply(f Fields) {
	r.Text = f.Text
	r.Date = f.Date
	r.Priority = f.Priority
	r.Notes = f.Notes
}

// Capitalize returns the display form of a priority, e.g. "High" for "high".
func Capitalize(priority string) string {
	if priority == "" {
		return ""
	}

	return strings.ToUpper(priority[:1]) + priority[1:]
}

func (f Fields) blank() bool {
	return strings.TrimSpace(f.Text) == ""
}

func indexOf(reminders []Reminder, id int64) int {
	for i, r := range reminders {
		if r.ID == id {
			return i
		}
	}

	return -1
}
