package task

import (
	"fmt"

	"github.com/felixgeelhaar/tasker/adapter/cli"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/queries"
	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List tasks",
	Long: `List every task, or only those with the given status.

Examples:
  tasker list
  tasker list done
  tasker list "in progress"`,
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return cli.ErrNotInitialized
		}

		query := queries.ListTasksQuery{}
		if len(args) == 1 {
			status, err := task.ParseStatus(args[0])
			if err != nil {
				return err
			}
			query.Status = &status
		}

		result, err := app.ListTasksHandler.Handle(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		out := cmd.OutOrStdout()
		if result.StoreEmpty() {
			fmt.Fprintln(out, "No tasks found")
			return nil
		}
		if len(result.Tasks) == 0 {
			fmt.Fprintf(out, "No tasks found with status: %s\n", *result.Filter)
			return nil
		}

		if result.Filter != nil {
			fmt.Fprintf(out, "\nShowing tasks with status: %s\n", *result.Filter)
		} else {
			fmt.Fprintln(out, "\nShowing all tasks:")
		}
		fmt.Fprintln(out, separator)
		for _, t := range result.Tasks {
			printTask(out, t)
			fmt.Fprintln(out, separator)
		}
		fmt.Fprintf(out, "\nTotal tasks shown: %d\n", len(result.Tasks))
		return nil
	},
}
