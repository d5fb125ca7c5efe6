package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/tasker/internal/tracker/application/queries"
	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [status]",
	Short: "Export tasks as JSON or YAML",
	Long: `Export tasks, optionally only those with one status.

Examples:
  tasker export                       # JSON to stdout
  tasker export --format yaml done    # finished tasks as YAML
  tasker export -o backup.json        # JSON to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ExportTasksHandler == nil {
			return ErrNotInitialized
		}

		format, err := queries.ParseExportFormat(exportFormat)
		if err != nil {
			return err
		}

		query := queries.ExportTasksQuery{Format: format}
		if len(args) == 1 {
			status, err := task.ParseStatus(args[0])
			if err != nil {
				return err
			}
			query.Status = &status
		}

		data, err := app.ExportTasksHandler.Handle(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("failed to export tasks: %w", err)
		}

		if exportOutput == "" || exportOutput == "-" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}

		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported tasks to %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
