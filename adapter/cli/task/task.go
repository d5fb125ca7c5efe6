// Package task holds the tasker commands that read and change tasks.
package task

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/tasker/internal/tracker/application/queries"
	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/spf13/cobra"
)

const separator = "--------------------------------------------------"

// Commands returns the task commands, ready to be added to the root command.
func Commands() []*cobra.Command {
	return []*cobra.Command{addCmd, updateCmd, deleteCmd, listCmd, showCmd}
}

// parseTaskID parses a positive task id argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive integer", task.ErrInvalidID, arg)
	}
	return id, nil
}

// parseStatusFlag parses an optional status flag value.
func parseStatusFlag(value string) (*task.Status, error) {
	if value == "" {
		return nil, nil
	}
	status, err := task.ParseStatus(value)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func printTask(w io.Writer, t queries.TaskDTO) {
	fmt.Fprintf(w, "ID: %d\n", t.ID)
	fmt.Fprintf(w, "Task: %s\n", t.Description)
	fmt.Fprintf(w, "Status: %s\n", t.Status)
	fmt.Fprintf(w, "Created: %s\n", t.CreatedAt.Format(task.TimestampLayout))
	fmt.Fprintf(w, "Last Updated: %s\n", t.UpdatedAt.Format(task.TimestampLayout))
}
