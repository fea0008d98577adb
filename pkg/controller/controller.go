package controller

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	pageList  = "list"
	pageForm  = "form"
	pageAlert = "alert"

	emptyTextMessage = "Please enter a reminder."

	// title plus the longest shortcut column
	headerRows = 6
)

// Controller mediates between the model and the view.
type Controller struct {
	ctx        context.Context
	session    *Session
	app        *tview.Application
	pages      *tview.Pages
	header     *tview.Table
	table      *tview.Table
	content    *ReminderContent
	selectedID int64
	events     map[rune]KeyEvent

	form             *tview.Form
	formHeader       *tview.Table
	textField        *tview.InputField
	dateField        *tview.InputField
	priorityDropDown *tview.DropDown
	notesField       *tview.InputField
	alert            *tview.Modal
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	// Label, if set, replaces Description in the key legend.
	Label func() string
	// Enabled, if set, reports whether the action currently applies; disabled keys are dimmed.
	Enabled func() bool
	Action  func(*tcell.EventKey) *tcell.EventKey
}

func (k KeyEvent) text() string {
	if k.Label != nil {
		return k.Label()
	}

	return k.Description
}

func (k KeyEvent) enabled() bool {
	return k.Enabled == nil || k.Enabled()
}

// NewController creates a new Controller to run the app.
func NewController(ctx context.Context, store Store) (*Controller, error) {
	c := Controller{
		ctx:     ctx,
		session: NewSession(store),
		app:     tview.NewApplication(),
		content: &ReminderContent{},
	}

	c.initEvents()

	return &c, nil
}

// Go starts the app and blocks until it exits.
func (c *Controller) Go() error {
	c.pages = tview.NewPages()

	c.pages.AddPage(pageList, c.getListGrid(), true, true)
	c.pages.AddPage(pageForm, c.getFormGrid(), true, false)
	c.pages.AddPage(pageAlert, c.getAlert(), false, false)

	c.refresh()
	c.showList()

	if err := c.app.SetRoot(c.pages, true).Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}

	return nil
}

func (c *Controller) getListGrid() *tview.Grid {
	c.header = tview.NewTable().SetBorders(false).SetSelectable(false, false)

	c.table = tview.NewTable().SetBorders(false)
	c.table.SetContent(c.content)
	c.table.SetSelectable(true, false)
	c.table.SetFixed(1, 0)
	c.table.SetSelectionChangedFunc(c.setCurrentRow)

	grid := tview.NewGrid().SetBorders(true).SetRows(headerRows, 0)

	grid.AddItem(c.header, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.table, 1, 0, 1, 1, 0, 0, true)

	return grid
}

// updateHeader shows the title followed by 3 columns listing keyboard shortcuts.
// the first column contains reminder actions, the second contains "Sort" shortcuts,
// and the third contains "Move" shortcuts. Shortcuts that don't apply to the selected
// reminder are dimmed.
func (c *Controller) updateHeader() {
	c.header.Clear()

	row := 0
	c.header.SetCell(row, 0, tview.NewTableCell("[yellow]Reminders"))
	row++

	shortcuts := map[int][]string{
		0: {},
		1: {},
		2: {},
	}

	for key, event := range c.events {
		color := "white"
		if !event.enabled() {
			color = "gray"
		}

		text := fmt.Sprintf("[orange]<%c>[%s] %s", key, color, event.text())

		switch {
		case strings.HasPrefix(event.Description, "Sort"):
			shortcuts[1] = append(shortcuts[1], text)
		case strings.HasPrefix(event.Description, "Move"):
			shortcuts[2] = append(shortcuts[2], text)
		default:
			shortcuts[0] = append(shortcuts[0], text)
		}
	}

	for col := 0; col < 3; col++ {
		sort.Strings(shortcuts[col])
	}

	for i := 0; i < len(shortcuts[0]) || i < len(shortcuts[1]) || i < len(shortcuts[2]); i++ {
		for col := 0; col < 3; col++ {
			if i < len(shortcuts[col]) {
				c.header.SetCell(row, col, tview.NewTableCell(shortcuts[col][i]).SetExpansion(1))
			}
		}

		row++
	}
}

// refresh rebuilds the list from the store, keeping the selected reminder selected.
func (c *Controller) refresh() {
	rows, err := c.session.Rows(c.ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error loading reminders")

		return
	}

	c.content.SetRows(rows)

	row := c.content.RowFor(c.selectedID)
	if row < 0 && len(rows) > 0 {
		row = 1
	}

	if row > 0 {
		c.table.Select(row, 0)
		c.selectedID = rows[row-1].Reminder.ID
	} else {
		c.selectedID = 0
	}

	c.updateHeader()
}

// when the row selection changes, update the selected reminder.
func (c *Controller) setCurrentRow(row, col int) {
	if r := c.content.Row(row); r != nil {
		c.selectedID = r.Reminder.ID

		log.Debug().Int("row", row).Msgf("selected reminder '%s'", r.Reminder.Text)
	}

	c.updateHeader()
}

func (c *Controller) selectedRow() *Row {
	row := c.content.RowFor(c.selectedID)
	if row < 0 {
		return nil
	}

	return c.content.Row(row)
}

func (c *Controller) hasSelection() bool {
	return c.selectedRow() != nil
}

func (c *Controller) handleKeys(evt *tcell.EventKey) *tcell.EventKey {
	if evt.Key() != tcell.KeyRune {
		return evt
	}

	if k, ok := c.events[evt.Rune()]; ok {
		return k.Action(evt)
	}

	return evt
}

func (c *Controller) showList() {
	c.pages.SwitchToPage(pageList)
	c.app.SetInputCapture(c.handleKeys)
	c.app.SetFocus(c.table)
}
