package controller

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/reminder-tracker/pkg/db"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// priorityOptions lists the dropdown entries; priorityValues holds the stored value for each.
var (
	priorityOptions = []string{"(none)", "High", "Medium", "Low"}
	priorityValues  = []string{db.PriorityNone, db.PriorityHigh, db.PriorityMedium, db.PriorityLow}
)

func priorityIndex(priority string) int {
	for i, value := range priorityValues {
		if value == priority {
			return i
		}
	}

	return 0
}

func (c *Controller) switchToForm() {
	title := "New Reminder"
	if _, editing := c.session.Editing(); editing {
		title = "Edit Reminder"
	}

	c.formHeader.SetCell(0, 0, tview.NewTableCell(fmt.Sprintf("[yellow]%s", title)))
	c.form.GetButton(0).SetLabel(c.session.SubmitLabel())

	c.form.SetFocus(0)

	c.pages.SwitchToPage(pageForm)

	c.app.SetInputCapture(c.handleFormKeys)
}

func (c *Controller) getFormGrid() *tview.Grid {
	grid := tview.NewGrid().SetBorders(true).SetRows(2, 0)

	c.formHeader = tview.NewTable().SetBorders(false).SetSelectable(false, false)
	c.formHeader.SetCell(1, 0, tview.NewTableCell("[orange]<Esc>[white] Cancel"))

	c.initForm()

	grid.AddItem(c.formHeader, 0, 0, 1, 1, 0, 0, false)
	grid.AddItem(c.form, 1, 0, 1, 1, 0, 0, true)

	return grid
}

func (c *Controller) initForm() {
	textMax := 80
	dateMax := 10
	notesMax := 200

	c.form = tview.NewForm().
		AddInputField("Reminder", "", textMax, nil, nil).
		AddInputField("Due date", "", dateMax, nil, nil).
		AddDropDown("Priority", priorityOptions, 0, nil).
		AddInputField("Notes", "", notesMax, nil, nil)

	c.textField, _ = c.form.GetFormItemByLabel("Reminder").(*tview.InputField)
	c.dateField, _ = c.form.GetFormItemByLabel("Due date").(*tview.InputField)
	c.priorityDropDown, _ = c.form.GetFormItemByLabel("Priority").(*tview.DropDown)
	c.notesField, _ = c.form.GetFormItemByLabel("Notes").(*tview.InputField)

	c.dateField.SetPlaceholder("YYYY-MM-DD")

	c.form.AddButton(submitAddLabel, c.submit)
	c.form.AddButton("Cancel", c.cancelForm)
}

func (c *Controller) getFormFields() db.Fields {
	index, _ := c.priorityDropDown.GetCurrentOption()

	priority := db.PriorityNone
	if index >= 0 && index < len(priorityValues) {
		priority = priorityValues[index]
	}

	return db.Fields{
		Text:     c.textField.GetText(),
		Date:     c.dateField.GetText(),
		Priority: priority,
		Notes:    c.notesField.GetText(),
	}
}

func (c *Controller) setFormFields(fields db.Fields) {
	c.textField.SetText(fields.Text)
	c.dateField.SetText(fields.Date)
	c.priorityDropDown.SetCurrentOption(priorityIndex(fields.Priority))
	c.notesField.SetText(fields.Notes)
}

func (c *Controller) startEdit() {
	row := c.selectedRow()
	if row == nil {
		return
	}

	fields, ok, err := c.session.StartEdit(c.ctx, row.Reminder.ID)
	if err != nil {
		log.Warn().Err(err).Msgf("error while trying to edit reminder '%s'", row.Reminder.Text)

		return
	}

	if !ok {
		c.refresh()

		return
	}

	c.setFormFields(fields)
	c.switchToForm()
}

func (c *Controller) submit() {
	log.Debug().Msgf("saving reminder with text '%s'", c.textField.GetText())

	reminder, err := c.session.Submit(c.ctx, c.getFormFields())
	if errors.Is(err, db.ErrEmptyText) {
		c.showAlert(emptyTextMessage)

		return
	}

	if err != nil {
		log.Err(err).Msg("error saving the reminder")

		return
	}

	c.setFormFields(db.Fields{})

	// select the new/edited reminder and return to the list
	if reminder != nil {
		c.selectedID = reminder.ID
	}

	c.refresh()
	c.showList()
}

func (c *Controller) cancelForm() {
	c.session.CancelEdit()
	c.setFormFields(db.Fields{})
	c.showList()
}

func (c *Controller) handleFormKeys(evt *tcell.EventKey) *tcell.EventKey {
	if evt.Key() != tcell.KeyEscape {
		return evt
	}

	if front, _ := c.pages.GetFrontPage(); front == pageAlert {
		c.hideAlert()

		return nil
	}

	c.cancelForm()

	return nil
}

func (c *Controller) getAlert() *tview.Modal {
	c.alert = tview.NewModal().
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			c.hideAlert()
		})

	return c.alert
}

func (c *Controller) showAlert(message string) {
	c.alert.SetText(message)
	c.pages.ShowPage(pageAlert)
}

func (c *Controller) hideAlert() {
	c.pages.HidePage(pageAlert)
	c.app.SetFocus(c.form)
}
