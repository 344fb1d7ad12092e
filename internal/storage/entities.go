package storage

import "time"

type Entry struct {
	ID         string
	Seq        int64
	Kind       string
	TaskID     *int
	Text       string
	Filter     string
	TaskCount  int
	Changed    bool
	RecordedAt time.Time
}

type EntryFilter struct {
	Kind   string
	Limit  int
	Offset int
}
