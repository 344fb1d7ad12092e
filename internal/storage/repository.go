package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Journal interface {
	Append(ctx context.Context, in Entry) (Entry, error)
	Get(ctx context.Context, id string) (Entry, error)
	List(ctx context.Context, filter EntryFilter) ([]Entry, error)
	Count(ctx context.Context) (int, error)
}
