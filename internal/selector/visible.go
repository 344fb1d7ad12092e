package selector

import "github.com/sandeepkv93/tasklist/internal/model"

func VisibleTasks(tasks []model.Task, filter model.Filter) []model.Task {
	switch filter {
	case model.FilterShowCompleted:
		return keep(tasks, true)
	case model.FilterShowActive:
		return keep(tasks, false)
	default:
		return tasks
	}
}

func keep(tasks []model.Task, completed bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

func Counts(tasks []model.Task) (active int, completed int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}
