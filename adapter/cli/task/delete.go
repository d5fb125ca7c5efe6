package task

import (
	"fmt"

	"github.com/felixgeelhaar/tasker/adapter/cli"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/commands"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Short:   "Delete a task",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.DeleteTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		result, err := app.DeleteTaskHandler.Handle(cmd.Context(), commands.DeleteTaskCommand{TaskID: id})
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		out := cmd.OutOrStdout()
		if !result.Deleted {
			fmt.Fprintf(out, "Task with ID %d not found\n", id)
			return nil
		}
		fmt.Fprintf(out, "Task %d deleted successfully\n", id)
		return nil
	},
}
