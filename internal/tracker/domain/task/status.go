package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidStatus is returned when a status string is outside the known set.
var ErrInvalidStatus = errors.New("invalid task status")

// Status represents the task progress state.
type Status int

const (
	StatusNotDone Status = iota
	StatusInProgress
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusNotDone:
		return "NotDone"
	case StatusInProgress:
		return "InProgress"
	case StatusDone:
		return "Done"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotDone, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusNotDone, StatusInProgress, StatusDone}
}

// ParseStatus normalizes user or stored input into a Status.
// Matching ignores case, whitespace, '-' and '_', so "not done", "in-progress"
// and "DONE" are all accepted. "todo" is an alias of NotDone.
func ParseStatus(s string) (Status, error) {
	key := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			return -1
		}
		return unicode.ToLower(r)
	}, s)

	switch key {
	case "notdone", "todo":
		return StatusNotDone, nil
	case "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return StatusNotDone, fmt.Errorf("%w %q (valid: NotDone, InProgress, Done)", ErrInvalidStatus, s)
	}
}
