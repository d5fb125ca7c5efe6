package task

import (
	"fmt"

	"github.com/felixgeelhaar/tasker/adapter/cli"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/queries"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show [task-id]",
	Short:   "Show task details",
	Aliases: []string{"get", "view"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		result, err := app.GetTaskHandler.Handle(cmd.Context(), queries.GetTaskQuery{TaskID: id})
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}

		out := cmd.OutOrStdout()
		if !result.Found {
			fmt.Fprintf(out, "Task with ID %d not found\n", id)
			return nil
		}
		printTask(out, result.Task)
		return nil
	},
}
