package selector

import (
	"reflect"
	"testing"

	"github.com/sandeepkv93/tasklist/internal/intent"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/reducer"
)

func mixedTasks() []model.Task {
	return []model.Task{
		{ID: 0, Text: "a", Completed: true},
		{ID: 1, Text: "b", Completed: false},
		{ID: 2, Text: "c", Completed: true},
		{ID: 3, Text: "d", Completed: false},
		{ID: 4, Text: "e", Completed: true},
	}
}

func TestVisibleTasksShowAllPassesThrough(t *testing.T) {
	tasks := mixedTasks()
	got := VisibleTasks(tasks, model.FilterShowAll)
	if len(got) != len(tasks) || &got[0] != &tasks[0] {
		t.Fatalf("expected identity pass-through, got %+v", got)
	}
}

func TestVisibleTasksUnknownFilterShowsAll(t *testing.T) {
	tasks := mixedTasks()
	for _, f := range []model.Filter{"", "SHOW_SOME", "show_all"} {
		if got := VisibleTasks(tasks, f); !reflect.DeepEqual(got, tasks) {
			t.Fatalf("filter %q: expected all tasks, got %+v", f, got)
		}
	}
}

func TestVisibleTasksCompletedKeepsOrder(t *testing.T) {
	got := VisibleTasks(mixedTasks(), model.FilterShowCompleted)
	ids := taskIDs(got)
	if !reflect.DeepEqual(ids, []int{0, 2, 4}) {
		t.Fatalf("unexpected completed ids: %v", ids)
	}
}

func TestVisibleTasksActiveKeepsOrder(t *testing.T) {
	got := VisibleTasks(mixedTasks(), model.FilterShowActive)
	ids := taskIDs(got)
	if !reflect.DeepEqual(ids, []int{1, 3}) {
		t.Fatalf("unexpected active ids: %v", ids)
	}
}

func TestVisibleTasksIsIdempotent(t *testing.T) {
	tasks := mixedTasks()
	for _, f := range append(model.Filters, "UNKNOWN") {
		once := VisibleTasks(tasks, f)
		twice := VisibleTasks(once, f)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("filter %q not idempotent: %+v vs %+v", f, once, twice)
		}
	}
}

func TestVisibleTasksDoesNotMutateInput(t *testing.T) {
	tasks := mixedTasks()
	_ = VisibleTasks(tasks, model.FilterShowActive)
	if !reflect.DeepEqual(tasks, mixedTasks()) {
		t.Fatalf("input mutated: %+v", tasks)
	}
}

func TestVisibleTasksEmptyInput(t *testing.T) {
	if got := VisibleTasks(nil, model.FilterShowCompleted); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestSetFilterCompletedRoundTrip(t *testing.T) {
	state := model.InitialState()
	state = reducer.Root(state, intent.NewFactory().SetFilter(model.FilterShowCompleted))
	got := VisibleTasks(state.Tasks, state.Filter)
	want := []model.Task{state.Tasks[0], state.Tasks[1]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCounts(t *testing.T) {
	active, completed := Counts(mixedTasks())
	if active != 2 || completed != 3 {
		t.Fatalf("counts = %d/%d, want 2/3", active, completed)
	}
}

func taskIDs(tasks []model.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
