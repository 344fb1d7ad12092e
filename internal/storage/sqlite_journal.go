package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLiteJournal(db *sql.DB) (*SQLiteJournal, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteJournal{db: db}, nil
}

func OpenMemory(name string) (*SQLiteJournal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "journal-" + uuid.NewString()
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The shared in-memory database is dropped with its last connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	j, err := NewSQLiteJournal(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

func (j *SQLiteJournal) Append(ctx context.Context, in Entry) (Entry, error) {
	if strings.TrimSpace(in.ID) == "" {
		in.ID = uuid.NewString()
	}
	if strings.TrimSpace(in.Kind) == "" {
		return Entry{}, errors.New("storage: entry kind is required")
	}
	if in.RecordedAt.IsZero() {
		in.RecordedAt = time.Now().UTC()
	}
	res, err := j.db.ExecContext(ctx, `
		INSERT INTO intent_journal (id, kind, task_id, text, filter, task_count, changed, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Kind, nullInt(in.TaskID), in.Text, in.Filter, in.TaskCount, boolInt(in.Changed), mustTime(in.RecordedAt),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("append journal entry: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return Entry{}, err
	}
	in.Seq = seq
	return in, nil
}

func (j *SQLiteJournal) Get(ctx context.Context, id string) (Entry, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT seq, id, kind, task_id, text, filter, task_count, changed, recorded_at
		FROM intent_journal WHERE id = ?`, id)
	out, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return out, nil
}

func (j *SQLiteJournal) List(ctx context.Context, filter EntryFilter) ([]Entry, error) {
	query := `SELECT seq, id, kind, task_id, text, filter, task_count, changed, recorded_at FROM intent_journal`
	args := make([]any, 0, 3)
	if filter.Kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, filter.Kind)
	}
	query += ` ORDER BY seq DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Count(ctx context.Context) (int, error) {
	var n int
	if err := j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM intent_journal`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var out Entry
	var taskID sql.NullInt64
	var changed int
	var recorded string
	if err := s.Scan(&out.Seq, &out.ID, &out.Kind, &taskID, &out.Text, &out.Filter, &out.TaskCount, &changed, &recorded); err != nil {
		return Entry{}, err
	}
	recordedAt, err := time.Parse(sqliteTimeLayout, recorded)
	if err != nil {
		return Entry{}, err
	}
	if taskID.Valid {
		id := int(taskID.Int64)
		out.TaskID = &id
	}
	out.Changed = changed == 1
	out.RecordedAt = recordedAt
	return out, nil
}
