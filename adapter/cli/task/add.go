package task

import (
	"fmt"

	"github.com/felixgeelhaar/tasker/adapter/cli"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/commands"
	"github.com/spf13/cobra"
)

var addStatus string

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a new task",
	Long: `Add a task. It gets the next free id and starts as NotDone unless
a status is given.

Examples:
  tasker add "Buy milk"
  tasker add "Walk dog" --status "in progress"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		status, err := parseStatusFlag(addStatus)
		if err != nil {
			return err
		}

		result, err := app.AddTaskHandler.Handle(cmd.Context(), commands.AddTaskCommand{
			Description: args[0],
			Status:      status,
		})
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Task added with ID: %d\n", result.TaskID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "", "initial status (NotDone, InProgress, Done)")
}
