package storage

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate-"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, MigrateUp(db), "first migrate up")
	require.NoError(t, MigrateDown(db), "migrate down")
	require.NoError(t, MigrateUp(db), "second migrate up")

	j, err := NewSQLiteJournal(db)
	require.NoError(t, err)
	entry, err := j.Append(t.Context(), Entry{Kind: "ADD_TASK", Text: "after roundtrip"})
	require.NoError(t, err)

	got, err := j.Get(t.Context(), entry.ID)
	require.NoError(t, err)
	require.Equal(t, "after roundtrip", got.Text)
}

func TestMigrateUpIsRepeatable(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate-"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, MigrateUp(db))
	require.NoError(t, MigrateUp(db))
}
