package store

import (
	"context"
	"errors"
	"fmt"

	"tutorhub/internal/platform/store/ch"
)

// chClient is the part of *ch.CH the adapter needs
type chClient interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, query string, args ...any) error
	Insert(ctx context.Context, table string, rows [][]any) error
	Query(ctx context.Context, query string, args ...any) (ch.Rows, error)
	Close() error
}

func newCHAdapter(c chClient) *clickhouseAdapter {
	return &clickhouseAdapter{inner: c}
}

// clickhouseAdapter adapts a clickhouse client to the store.Clickhouse seam
type clickhouseAdapter struct {
	inner chClient
}

var (
	_ Clickhouse = (*clickhouseAdapter)(nil)
	_ Pinger     = (*clickhouseAdapter)(nil)
)

func (a *clickhouseAdapter) Exec(ctx context.Context, sql string, args ...any) error {
	return a.inner.Exec(ctx, sql, args...)
}

// Insert accepts [][]any or a single []any row
func (a *clickhouseAdapter) Insert(ctx context.Context, table string, data any) error {
	switch v := data.(type) {
	case [][]any:
		return a.inner.Insert(ctx, table, v)
	case []any:
		return a.inner.Insert(ctx, table, [][]any{v})
	default:
		return fmt.Errorf("store: unsupported clickhouse insert shape %T", data)
	}
}

func (a *clickhouseAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.inner.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &chRows{r: r}, nil
}

func (a *clickhouseAdapter) Close() error { return a.inner.Close() }

func (a *clickhouseAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return errors.New("store: nil clickhouse adapter")
	}
	return a.inner.Ping(ctx)
}

// chRows wraps ch.Rows as store.Rows
type chRows struct{ r ch.Rows }

func (r *chRows) Next() bool             { return r.r.Next() }
func (r *chRows) Scan(dest ...any) error { return r.r.Scan(dest...) }
func (r *chRows) Err() error             { return r.r.Err() }
func (r *chRows) Close()                 { _ = r.r.Close() }
func (r *chRows) Columns() []string      { return r.r.Columns() }
