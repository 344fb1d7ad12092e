package storage

import (
	"context"
	"log"
	"slices"
	"time"

	"github.com/sandeepkv93/tasklist/internal/intent"
	"github.com/sandeepkv93/tasklist/internal/model"
	"github.com/sandeepkv93/tasklist/internal/store"
)

func Recorder(j Journal, now func() time.Time) store.Hook {
	if now == nil {
		now = time.Now
	}
	return func(prev, next model.State, in intent.Intent) {
		entry := EntryFromTransition(prev, next, in)
		entry.RecordedAt = now().UTC()
		if _, err := j.Append(context.Background(), entry); err != nil {
			log.Printf("journal: append %s: %v", in.Kind, err)
		}
	}
}

func EntryFromTransition(prev, next model.State, in intent.Intent) Entry {
	entry := Entry{
		Kind:      string(in.Kind),
		Text:      in.Text,
		Filter:    string(in.Filter),
		TaskCount: len(next.Tasks),
		Changed:   prev.Filter != next.Filter || !slices.Equal(prev.Tasks, next.Tasks),
	}
	switch in.Kind {
	case intent.KindAddTask, intent.KindToggleTask:
		id := in.ID
		entry.TaskID = &id
	}
	return entry
}
