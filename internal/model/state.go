package model

type State struct {
	Tasks  []Task
	Filter Filter
}

func InitialState() State {
	return State{
		Filter: FilterShowAll,
		Tasks: []Task{
			{ID: 0, Text: "Изучить React", Completed: true},
			{ID: 1, Text: "Изучить Redux", Completed: true},
			{ID: 2, Text: `Написать приложение "Список задач"`, Completed: false},
		},
	}
}

func (s State) Clone() State {
	out := State{Filter: s.Filter}
	if s.Tasks != nil {
		out.Tasks = make([]Task, len(s.Tasks))
		copy(out.Tasks, s.Tasks)
	}
	return out
}
