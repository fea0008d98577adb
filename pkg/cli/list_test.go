package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matt-steen/reminder-tracker/pkg/cli"
	"github.com/matt-steen/reminder-tracker/pkg/db"
	"github.com/stretchr/testify/assert"
)

func seed(assert *assert.Assertions, filename string) {
	database, err := db.NewDatabase(context.Background(), filename)
	assert.Nil(err)

	defer database.Close()

	for _, fields := range []db.Fields{
		{Text: "someday", Priority: db.PriorityLow},
		{Text: "Pay rent", Date: "2024-03-01", Priority: db.PriorityHigh, Notes: "by check"},
		{Text: "dentist", Date: "2024-05-01"},
	} {
		_, err := database.NewReminder(context.Background(), fields)
		assert.Nil(err)
	}
}

func runList(assert *assert.Assertions, dir string, args ...string) (string, error) {
	out := &bytes.Buffer{}

	cmd := cli.NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.toml"),
		"--db", filepath.Join(dir, "reminders.sqlite"),
		"--log-file", filepath.Join(dir, "debug.log"),
		"list",
	}, args...))

	err := cmd.Execute()

	return out.String(), err
}

// firstColumn returns the reminder text of each printed row.
func firstColumn(output string) []string {
	out := []string{}

	for _, line := range strings.Split(strings.TrimSpace(output), "\n")[1:] {
		fields := strings.Fields(line)
		// skip the "[" "]" or "[x]" marker
		if fields[0] == "[" {
			fields = fields[2:]
		} else {
			fields = fields[1:]
		}

		out = append(out, fields[0])
	}

	return out
}

func TestListManualOrder(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	seed(assert, filepath.Join(dir, "reminders.sqlite"))

	output, err := runList(assert, dir)
	assert.Nil(err)
	assert.Contains(output, "REMINDER")
	assert.Contains(output, "by check")
	assert.Equal([]string{"someday", "Pay", "dentist"}, firstColumn(output))
}

func TestListSortedByDate(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	seed(assert, filepath.Join(dir, "reminders.sqlite"))

	output, err := runList(assert, dir, "--sort", "date")
	assert.Nil(err)
	assert.Equal([]string{"Pay", "dentist", "someday"}, firstColumn(output))

	output, err = runList(assert, dir, "--sort", "date", "--desc")
	assert.Nil(err)
	assert.Equal([]string{"dentist", "Pay", "someday"}, firstColumn(output))
}

func TestListSortedByPriority(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	seed(assert, filepath.Join(dir, "reminders.sqlite"))

	output, err := runList(assert, dir, "--sort", "priority")
	assert.Nil(err)
	assert.Equal([]string{"Pay", "someday", "dentist"}, firstColumn(output))
	assert.Contains(output, "High")
}

func TestListUnknownSort(t *testing.T) {
	assert := assert.New(t)

	output, err := runList(assert, t.TempDir(), "--sort", "colour")
	assert.NotNil(err)
	assert.Contains(output, "unknown sort key")
}

func TestListEmpty(t *testing.T) {
	assert := assert.New(t)

	output, err := runList(assert, t.TempDir())
	assert.Nil(err)
	assert.Equal([]string{}, firstColumn(output))
}
