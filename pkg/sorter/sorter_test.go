package sorter_test

import (
	"testing"

	"github.com/matt-steen/reminder-tracker/pkg/db"
	"github.com/matt-steen/reminder-tracker/pkg/sorter"
	"github.com/stretchr/testify/assert"
)

func ids(reminders []db.Reminder) []int64 {
	out := []int64{}
	for _, r := range reminders {
		out = append(out, r.ID)
	}

	return out
}

func datedReminders() []db.Reminder {
	return []db.Reminder{
		{ID: 1, Text: "a", Date: ""},
		{ID: 2, Text: "b", Date: "2024-05-01"},
		{ID: 3, Text: "c", Date: "2023-12-31"},
		{ID: 4, Text: "d", Date: ""},
		{ID: 5, Text: "e", Date: "2024-05-01"},
		{ID: 6, Text: "f", Date: "2025-01-15"},
	}
}

func prioritizedReminders() []db.Reminder {
	return []db.Reminder{
		{ID: 1, Priority: db.PriorityLow},
		{ID: 2, Priority: db.PriorityNone},
		{ID: 3, Priority: db.PriorityHigh},
		{ID: 4, Priority: db.PriorityMedium},
		{ID: 5, Priority: db.PriorityHigh},
		{ID: 6, Priority: "urgent"},
		{ID: 7, Priority: db.PriorityLow},
	}
}

func TestSortNone(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	reminders := datedReminders()
	sorted := sorter.Sort(reminders, sorter.State{})
	assert.Equal(reminders, sorted)

	// the result is a copy
	sorted[0].Text = "changed"
	assert.Equal("a", reminders[0].Text)
}

func TestSortByDate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	asc := sorter.Sort(datedReminders(), sorter.State{Key: sorter.KeyDate, Ascending: true})
	assert.Equal([]int64{3, 2, 5, 6, 1, 4}, ids(asc))

	desc := sorter.Sort(datedReminders(), sorter.State{Key: sorter.KeyDate})
	assert.Equal([]int64{6, 2, 5, 3, 1, 4}, ids(desc))
}

func TestSortByDateUnsetLast(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	for _, ascending := range []bool{true, false} {
		sorted := sorter.Sort(datedReminders(), sorter.State{Key: sorter.KeyDate, Ascending: ascending})

		seenUnset := false

		for _, r := range sorted {
			if r.Date == "" {
				seenUnset = true

				continue
			}

			assert.False(seenUnset, "set date %s after an unset date (ascending=%v)", r.Date, ascending)
		}
	}
}

func TestSortByDateTwoEntries(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	reminders := []db.Reminder{{ID: 1, Date: "2024-05-01"}, {ID: 2, Date: ""}}

	asc := sorter.Sort(reminders, sorter.State{Key: sorter.KeyDate, Ascending: true})
	assert.Equal([]int64{1, 2}, ids(asc))

	desc := sorter.Sort(reminders, sorter.State{Key: sorter.KeyDate, Ascending: false})
	assert.Equal([]int64{1, 2}, ids(desc))

	// unset stays last even when it comes first in manual order
	reversed := []db.Reminder{reminders[1], reminders[0]}
	assert.Equal([]int64{1, 2}, ids(sorter.Sort(reversed, sorter.State{Key: sorter.KeyDate})))
}

func TestSortByPriority(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	asc := sorter.Sort(prioritizedReminders(), sorter.State{Key: sorter.KeyPriority, Ascending: true})
	assert.Equal([]int64{3, 5, 4, 1, 7, 2, 6}, ids(asc))

	desc := sorter.Sort(prioritizedReminders(), sorter.State{Key: sorter.KeyPriority, Ascending: false})
	assert.Equal([]int64{2, 6, 1, 7, 4, 3, 5}, ids(desc))
}

func TestSortDoesNotMutate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	reminders := prioritizedReminders()
	state := sorter.State{Key: sorter.KeyPriority, Ascending: true}

	first := sorter.Sort(reminders, state)
	second := sorter.Sort(reminders, state)

	assert.Equal(prioritizedReminders(), reminders)
	assert.Equal(first, second)
}

func TestPriorityRank(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal(0, sorter.PriorityRank(db.PriorityHigh))
	assert.Equal(1, sorter.PriorityRank(db.PriorityMedium))
	assert.Equal(2, sorter.PriorityRank(db.PriorityLow))
	assert.Equal(3, sorter.PriorityRank(db.PriorityNone))
	assert.Equal(3, sorter.PriorityRank("someday"))
}

func TestToggle(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	state := sorter.State{}
	assert.False(state.Active())

	state = state.Toggle(sorter.KeyDate)
	assert.Equal(sorter.State{Key: sorter.KeyDate, Ascending: true}, state)
	assert.True(state.Active())

	state = state.Toggle(sorter.KeyDate)
	assert.Equal(sorter.State{Key: sorter.KeyDate, Ascending: false}, state)

	state = state.Toggle(sorter.KeyPriority)
	assert.Equal(sorter.State{Key: sorter.KeyPriority, Ascending: true}, state)

	assert.Equal(sorter.State{}, state.Toggle(sorter.KeyNone))
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	for _, key := range []sorter.Key{sorter.KeyNone, sorter.KeyDate, sorter.KeyPriority} {
		assert.Equal(key, sorter.ParseKey(key.String()))
	}

	assert.Equal(sorter.KeyNone, sorter.ParseKey("colour"))
}
