package intent

import (
	"testing"

	"github.com/sandeepkv93/tasklist/internal/model"
)

func TestAddTaskAssignsIncreasingIDsFromThree(t *testing.T) {
	f := NewFactory()
	if f.Peek() != 3 {
		t.Fatalf("expected first id 3, got %d", f.Peek())
	}
	prev := -1
	for i := 0; i < 5; i++ {
		in := f.AddTask("task")
		if in.Kind != KindAddTask {
			t.Fatalf("unexpected kind: %q", in.Kind)
		}
		if in.ID != 3+i {
			t.Fatalf("call %d: id = %d, want %d", i, in.ID, 3+i)
		}
		if in.ID <= prev {
			t.Fatalf("ids not strictly increasing: %d after %d", in.ID, prev)
		}
		prev = in.ID
	}
	if f.Peek() != 8 {
		t.Fatalf("expected next id 8, got %d", f.Peek())
	}
}

func TestFactoriesAreIndependent(t *testing.T) {
	a := NewFactory()
	b := NewFactoryFrom(10)
	a.AddTask("a")
	a.AddTask("b")
	if got := b.AddTask("c").ID; got != 10 {
		t.Fatalf("expected independent sequence, got id %d", got)
	}
	if a.Peek() != 5 {
		t.Fatalf("expected factory a at 5, got %d", a.Peek())
	}
}

func TestAddTaskKeepsTextVerbatim(t *testing.T) {
	in := NewFactory().AddTask("")
	if in.Text != "" || in.ID != 3 {
		t.Fatalf("unexpected intent: %+v", in)
	}
}

func TestToggleAndFilterDoNotConsumeIDs(t *testing.T) {
	f := NewFactory()
	toggle := f.ToggleTask(42)
	if toggle.Kind != KindToggleTask || toggle.ID != 42 {
		t.Fatalf("unexpected toggle intent: %+v", toggle)
	}
	set := f.SetFilter(model.Filter("BOGUS"))
	if set.Kind != KindSetFilter || set.Filter != "BOGUS" {
		t.Fatalf("unexpected filter intent: %+v", set)
	}
	if f.Peek() != FirstTaskID {
		t.Fatalf("expected id sequence untouched, got %d", f.Peek())
	}
}
