package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/tasker/adapter/cli"
	"github.com/felixgeelhaar/tasker/internal/tracker/application/commands"
	"github.com/spf13/cobra"
)

// ErrNoUpdates is returned when update is called without any change.
var ErrNoUpdates = errors.New("please provide either new description or status to update")

var (
	updateDescription string
	updateStatus      string
)

var updateCmd = &cobra.Command{
	Use:   "update [task-id]",
	Short: "Update a task's description or status",
	Long: `Change the description, the status or both of an existing task.

Examples:
  tasker update 1 --status done
  tasker update 2 -d "Walk the dog" -s InProgress`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		if strings.TrimSpace(updateDescription) == "" && updateStatus == "" {
			return ErrNoUpdates
		}

		status, err := parseStatusFlag(updateStatus)
		if err != nil {
			return err
		}

		updateCommand := commands.UpdateTaskCommand{TaskID: id, Status: status}
		if updateDescription != "" {
			updateCommand.Description = &updateDescription
		}

		result, err := app.UpdateTaskHandler.Handle(cmd.Context(), updateCommand)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		out := cmd.OutOrStdout()
		if !result.Updated {
			fmt.Fprintf(out, "Task with ID %d not found\n", id)
			return nil
		}
		fmt.Fprintf(out, "Task %d updated successfully\n", id)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new task description")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "new status (NotDone, InProgress, Done)")
}
