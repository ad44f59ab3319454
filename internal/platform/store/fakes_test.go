package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type fakeTag int64

func (t fakeTag) String() string      { return "UPDATE " + strconv.FormatInt(int64(t), 10) }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

// fakeQuerier is a scripted RowQuerier
type fakeQuerier struct {
	tag      fakeTag
	execErr  error
	rows     *fakeRows
	queryErr error
	row      *fakeRow

	lastSQL  string
	lastArgs []any
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.tag, f.execErr
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

type fakeRow struct {
	val any
	err error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignOne(dest[0], r.val)
}

// fakeRows iterates over data, one []any per row
type fakeRows struct {
	cols    []string
	data    [][]any
	i       int
	err     error
	scanErr error
	closed  bool
}

func newRows(cols []string, data ...[]any) *fakeRows {
	return &fakeRows{cols: cols, data: data, i: -1}
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Next() bool {
	if r.i+1 >= len(r.data) {
		return false
	}
	r.i++
	return true
}
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.i < 0 || r.i >= len(r.data) {
		return errors.New("scan out of range")
	}
	for i := range dest {
		if err := assignOne(dest[i], r.data[r.i][i]); err != nil {
			return err
		}
	}
	return nil
}
func (r *fakeRows) Err() error { return r.err }
func (r *fakeRows) Close()     { r.closed = true }

func assignOne(dst, v any) error {
	switch d := dst.(type) {
	case *int:
		*d = v.(int)
	case *int64:
		*d = v.(int64)
	case *string:
		*d = v.(string)
	default:
		return fmt.Errorf("unsupported dest %T", dst)
	}
	return nil
}

// recordingTracer keeps the SQL of every traced statement
type recordingTracer struct{ sql []string }

func (r *recordingTracer) joined() string { return strings.Join(r.sql, ";") }
