package task_test

import (
	"testing"

	"github.com/felixgeelhaar/tasker/internal/tracker/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected task.Status
	}{
		{"NotDone", task.StatusNotDone},
		{"not done", task.StatusNotDone},
		{"Not Done", task.StatusNotDone},
		{"not-done", task.StatusNotDone},
		{"todo", task.StatusNotDone},
		{"InProgress", task.StatusInProgress},
		{"in progress", task.StatusInProgress},
		{"in-progress", task.StatusInProgress},
		{"IN_PROGRESS", task.StatusInProgress},
		{"done", task.StatusDone},
		{" DONE ", task.StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := task.ParseStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, input := range []string{"", "finished", "half done", "d0ne"} {
		t.Run(input, func(t *testing.T) {
			_, err := task.ParseStatus(input)
			assert.ErrorIs(t, err, task.ErrInvalidStatus)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "NotDone", task.StatusNotDone.String())
	assert.Equal(t, "InProgress", task.StatusInProgress.String())
	assert.Equal(t, "Done", task.StatusDone.String())
	assert.Equal(t, "unknown", task.Status(9).String())
}

func TestStatus_RoundTripsThroughParse(t *testing.T) {
	for _, s := range task.Statuses() {
		parsed, err := task.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}
