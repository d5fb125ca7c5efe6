// Package persistence implements task.Store backends: a JSON document on
// disk (the default), a SQLite database and an in-memory store for tests.
package persistence

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task_list.schema.json
var documentSchemaJSON string

// documentSchemaURL names the embedded schema in validation errors.
const documentSchemaURL = "mem://tasker/task_list.schema.json"

var documentSchema = jsonschema.MustCompileString(documentSchemaURL, documentSchemaJSON)

// taskRecord is the persisted shape of one task.
type taskRecord struct {
	ID        int    `json:"id"`
	Task      string `json:"task"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// document is the persisted shape of the whole task list.
type document struct {
	Tasks []taskRecord `json:"tasks"`
}

func toRecord(t *task.Task) taskRecord {
	return taskRecord{
		ID:        t.ID(),
		Task:      t.Description(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt().Format(task.TimestampLayout),
		UpdatedAt: t.UpdatedAt().Format(task.TimestampLayout),
	}
}

func fromRecord(r taskRecord) (*task.Task, error) {
	if strings.TrimSpace(r.Task) == "" {
		return nil, task.ErrEmptyDescription
	}
	status, err := task.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	createdAt, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("created_at: %w", err)
	}
	updatedAt, err := parseTimestamp(r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("updated_at: %w", err)
	}
	return task.Rehydrate(r.ID, r.Task, status, createdAt, updatedAt), nil
}

func parseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(task.TimestampLayout, s, time.Local)
}

// recordsToList rebuilds a task list, rejecting unparseable records and
// repeated ids.
func recordsToList(records []taskRecord) (*task.List, error) {
	tasks := make([]*task.Task, 0, len(records))
	for i, r := range records {
		t, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		tasks = append(tasks, t)
	}
	return task.NewList(tasks...)
}

func listToRecords(list *task.List) []taskRecord {
	tasks := list.Tasks()
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}
	return records
}

// encodeDocument renders the list as an indented JSON document with a
// trailing newline.
func encodeDocument(list *task.List) ([]byte, error) {
	data, err := json.MarshalIndent(document{Tasks: listToRecords(list)}, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal task list: %w", err)
	}
	return append(data, '\n'), nil
}

// decodeDocument validates data against the task list schema and rebuilds
// the list. Any error means the document is malformed.
func decodeDocument(data []byte) (*task.List, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse task list: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("parse task list: trailing data after document")
	}
	if err := documentSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate task list: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}
	return recordsToList(doc.Tasks)
}
