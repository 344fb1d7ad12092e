package model

import (
	"errors"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{ID: 3, Text: "Test"}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBlankText(t *testing.T) {
	task := Task{ID: 0, Text: "   "}
	err := task.Validate()
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got: %v", err)
	}
	if err := (Task{ID: 3, Text: "\t\n"}).Validate(); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText for whitespace, got: %v", err)
	}
}

func TestTaskValidateRejectsNegativeID(t *testing.T) {
	err := Task{ID: -1, Text: "x"}.Validate()
	if err == nil || !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got: %v", err)
	}
	if err.Error() != "model: invalid task id: -1" {
		t.Fatalf("unexpected error text: %v", err)
	}
}

func TestFilterIsValid(t *testing.T) {
	for _, f := range Filters {
		if !f.IsValid() {
			t.Fatalf("expected %q to be valid", f)
		}
	}
	if Filter("SHOW_SOMETIMES").IsValid() {
		t.Fatal("expected unknown filter to be invalid")
	}
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{"all", FilterShowAll, true},
		{" Active ", FilterShowActive, true},
		{"done", FilterShowCompleted, true},
		{"SHOW_COMPLETED", FilterShowCompleted, true},
		{"later", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseFilter(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseFilter(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFilterLabel(t *testing.T) {
	if FilterShowActive.Label() != "Активные задачи" {
		t.Fatalf("unexpected label: %q", FilterShowActive.Label())
	}
	if Filter("custom").Label() != "custom" {
		t.Fatalf("unknown filter should label as itself, got %q", Filter("custom").Label())
	}
}
