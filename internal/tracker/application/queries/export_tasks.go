package queries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"gopkg.in/yaml.v3"
)

// ExportFormat selects the encoding of an export.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// ErrUnknownExportFormat is returned for formats other than json and yaml.
var ErrUnknownExportFormat = errors.New("unknown export format")

// ParseExportFormat parses a format name. "yml" is accepted for yaml.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return ExportJSON, nil
	case "yaml", "yml":
		return ExportYAML, nil
	default:
		return "", fmt.Errorf("%w %q (valid: json, yaml)", ErrUnknownExportFormat, s)
	}
}

// ExportTasksQuery contains the parameters for an export.
type ExportTasksQuery struct {
	Status *task.Status
	Format ExportFormat
}

// exportedTask mirrors the stored record so an export can be read back as
// a task list document.
type exportedTask struct {
	ID        int    `json:"id" yaml:"id"`
	Task      string `json:"task" yaml:"task"`
	Status    string `json:"status" yaml:"status"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

type exportDocument struct {
	Tasks []exportedTask `json:"tasks" yaml:"tasks"`
}

// ExportTasksHandler handles the ExportTasksQuery.
type ExportTasksHandler struct {
	list *ListTasksHandler
}

// NewExportTasksHandler creates a new ExportTasksHandler.
func NewExportTasksHandler(store task.Store) *ExportTasksHandler {
	return &ExportTasksHandler{list: NewListTasksHandler(store)}
}

// Handle renders the matching tasks in the requested format.
func (h *ExportTasksHandler) Handle(ctx context.Context, query ExportTasksQuery) ([]byte, error) {
	result, err := h.list.Handle(ctx, ListTasksQuery{Status: query.Status})
	if err != nil {
		return nil, err
	}

	doc := exportDocument{Tasks: make([]exportedTask, 0, len(result.Tasks))}
	for _, t := range result.Tasks {
		doc.Tasks = append(doc.Tasks, exportedTask{
			ID:        t.ID,
			Task:      t.Description,
			Status:    t.Status,
			CreatedAt: t.CreatedAt.Format(task.TimestampLayout),
			UpdatedAt: t.UpdatedAt.Format(task.TimestampLayout),
		})
	}

	switch query.Format {
	case ExportJSON, "":
		data, err := json.MarshalIndent(doc, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json export: %w", err)
		}
		return append(data, '\n'), nil
	case ExportYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml export: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownExportFormat, query.Format)
	}
}
