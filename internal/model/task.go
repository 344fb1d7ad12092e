package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyText = errors.New("model: task text is required")
	ErrInvalidID = errors.New("model: invalid task id")
)

type Filter string

const (
	FilterShowAll       Filter = "SHOW_ALL"
	FilterShowActive    Filter = "SHOW_ACTIVE"
	FilterShowCompleted Filter = "SHOW_COMPLETED"
)

var Filters = []Filter{FilterShowAll, FilterShowActive, FilterShowCompleted}

func (f Filter) IsValid() bool {
	switch f {
	case FilterShowAll, FilterShowActive, FilterShowCompleted:
		return true
	default:
		return false
	}
}

func (f Filter) Label() string {
	switch f {
	case FilterShowAll:
		return "Все задачи"
	case FilterShowActive:
		return "Активные задачи"
	case FilterShowCompleted:
		return "Завершенные задачи"
	default:
		return string(f)
	}
}

func ParseFilter(raw string) (Filter, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all", "show_all":
		return FilterShowAll, true
	case "active", "show_active":
		return FilterShowActive, true
	case "completed", "done", "show_completed":
		return FilterShowCompleted, true
	default:
		return "", false
	}
}

type Task struct {
	ID        int
	Text      string
	Completed bool
}

func (t Task) Validate() error {
	if t.ID < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, t.ID)
	}
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}
	return nil
}
