package intent

import "github.com/sandeepkv93/tasklist/internal/model"

type Kind string

const (
	KindAddTask    Kind = "ADD_TASK"
	KindToggleTask Kind = "TOGGLE_TASK"
	KindSetFilter  Kind = "SET_FILTER"
)

const FirstTaskID = 3

type Intent struct {
	Kind   Kind
	ID     int
	Text   string
	Filter model.Filter
}

// Factory owns the task id sequence. Ids are never reset or reused.
type Factory struct {
	nextID int
}

func NewFactory() *Factory {
	return NewFactoryFrom(FirstTaskID)
}

func NewFactoryFrom(next int) *Factory {
	return &Factory{nextID: next}
}

func (f *Factory) AddTask(text string) Intent {
	id := f.nextID
	f.nextID++
	return Intent{Kind: KindAddTask, ID: id, Text: text}
}

func (f *Factory) ToggleTask(id int) Intent {
	return Intent{Kind: KindToggleTask, ID: id}
}

func (f *Factory) SetFilter(filter model.Filter) Intent {
	return Intent{Kind: KindSetFilter, Filter: filter}
}

func (f *Factory) Peek() int {
	return f.nextID
}
