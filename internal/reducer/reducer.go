package reducer

import (
	"github.com/sandeepkv93/tasklist/internal/intent"
	"github.com/sandeepkv93/tasklist/internal/model"
)

type Func func(prev model.State, in intent.Intent) model.State

// TOGGLE_TASK matches the task at positional index in.ID, not the task whose
// ID field equals in.ID. The two coincide while tasks are only ever appended
// with sequential ids, which is the only way this package grows the slice.
func Tasks(prev []model.Task, in intent.Intent) []model.Task {
	switch in.Kind {
	case intent.KindAddTask:
		next := make([]model.Task, len(prev), len(prev)+1)
		copy(next, prev)
		return append(next, model.Task{ID: in.ID, Text: in.Text, Completed: false})
	case intent.KindToggleTask:
		if in.ID < 0 || in.ID >= len(prev) {
			return prev
		}
		next := make([]model.Task, len(prev))
		copy(next, prev)
		next[in.ID].Completed = !next[in.ID].Completed
		return next
	default:
		return prev
	}
}

// SET_FILTER values are stored verbatim, including the empty filter.
func Filter(prev model.Filter, in intent.Intent) model.Filter {
	switch in.Kind {
	case intent.KindSetFilter:
		return in.Filter
	default:
		return prev
	}
}

type Slices struct {
	Tasks  func([]model.Task, intent.Intent) []model.Task
	Filter func(model.Filter, intent.Intent) model.Filter
}

func Combine(s Slices) Func {
	return func(prev model.State, in intent.Intent) model.State {
		next := prev
		if s.Tasks != nil {
			next.Tasks = s.Tasks(prev.Tasks, in)
		}
		if s.Filter != nil {
			next.Filter = s.Filter(prev.Filter, in)
		}
		return next
	}
}

var Root = Combine(Slices{Tasks: Tasks, Filter: Filter})
