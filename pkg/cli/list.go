package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/matt-steen/reminder-tracker/pkg/db"
	"github.com/matt-steen/reminder-tracker/pkg/sorter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var sortBy string

	var desc bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := sorter.ParseKey(sortBy)
			if key == sorter.KeyNone && sortBy != "" && sortBy != sorter.KeyNone.String() {
				return fmt.Errorf("unknown sort key %q (use date or priority)", sortBy)
			}

			database, err := app.openDatabase(cmd.Context())
			if err != nil {
				return err
			}

			defer database.Close()

			reminders, err := database.Load(cmd.Context())
			if err != nil {
				return err
			}

			state := sorter.State{Key: key, Ascending: !desc}

			return writeReminders(cmd.OutOrStdout(), sorter.Sort(reminders, state))
		},
	}

	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort by date or priority (default manual order)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")

	return cmd
}

func writeReminders(out io.Writer, reminders []db.Reminder) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "\tREMINDER\tDUE\tPRIORITY\tNOTES")

	for _, r := range reminders {
		done := "[ ]"
		if r.Completed {
			done = "[x]"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", done, r.Text, r.Date, db.Capitalize(r.Priority), r.Notes)
	}

	return w.Flush()
}
