package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupJournal(t *testing.T) *SQLiteJournal {
	t.Helper()
	j, err := OpenMemory("test-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func intPtr(v int) *int { return &v }

func TestAppendGetAndList(t *testing.T) {
	j := setupJournal(t)
	ctx := t.Context()
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	first, err := j.Append(ctx, Entry{Kind: "ADD_TASK", TaskID: intPtr(3), Text: "Test", TaskCount: 4, Changed: true, RecordedAt: at})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.EqualValues(t, 1, first.Seq)

	second, err := j.Append(ctx, Entry{Kind: "SET_FILTER", Filter: "SHOW_ACTIVE", TaskCount: 4, Changed: true, RecordedAt: at.Add(time.Second)})
	require.NoError(t, err)
	require.EqualValues(t, 2, second.Seq)

	got, err := j.Get(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "ADD_TASK", got.Kind)
	require.NotNil(t, got.TaskID)
	require.Equal(t, 3, *got.TaskID)
	require.Equal(t, "Test", got.Text)
	require.True(t, got.Changed)
	require.True(t, got.RecordedAt.Equal(at))

	all, err := j.List(ctx, EntryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID, "expected newest first")
	require.Nil(t, all[0].TaskID)

	onlyAdds, err := j.List(ctx, EntryFilter{Kind: "ADD_TASK"})
	require.NoError(t, err)
	require.Len(t, onlyAdds, 1)

	n, err := j.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestListPagination(t *testing.T) {
	j := setupJournal(t)
	ctx := t.Context()
	for i := 0; i < 5; i++ {
		_, err := j.Append(ctx, Entry{Kind: "TOGGLE_TASK", TaskID: intPtr(i), TaskCount: 3})
		require.NoError(t, err)
	}

	page, err := j.List(ctx, EntryFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, 4, *page[0].TaskID)

	rest, err := j.List(ctx, EntryFilter{Offset: 3})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	require.Equal(t, 1, *rest[0].TaskID)
}

func TestGetMissingEntry(t *testing.T) {
	j := setupJournal(t)
	_, err := j.Get(t.Context(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAppendRequiresKind(t *testing.T) {
	j := setupJournal(t)
	_, err := j.Append(t.Context(), Entry{})
	require.Error(t, err)
}

func TestOpenMemoryJournalsAreIsolated(t *testing.T) {
	a := setupJournal(t)
	b := setupJournal(t)
	_, err := a.Append(t.Context(), Entry{Kind: "ADD_TASK"})
	require.NoError(t, err)

	n, err := b.Count(t.Context())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestNewSQLiteJournalRejectsNilDB(t *testing.T) {
	_, err := NewSQLiteJournal(nil)
	require.Error(t, err)
}
