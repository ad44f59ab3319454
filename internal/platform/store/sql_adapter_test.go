package store

import (
	"context"
	"errors"
	"testing"

	"tutorhub/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (r *recordingTracer) OnQuery(_ context.Context, ev pg.QueryEvent) {
	s := ev.SQL
	if ev.Err != nil {
		s += "!"
	}
	r.sql = append(r.sql, s)
}

type pgxRow struct {
	v   int
	err error
}

func (r pgxRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.v
	return nil
}

// pgxFake implements pgxQuerier and pgx.Tx
type pgxFake struct {
	row        pgxRow
	execErr    error
	committed  bool
	rolledBack bool
}

func (f *pgxFake) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("UPDATE 1"), f.execErr
}
func (f *pgxFake) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("query not scripted")
}
func (f *pgxFake) QueryRow(context.Context, string, ...any) pgx.Row { return f.row }
func (f *pgxFake) Begin(context.Context) (pgx.Tx, error)            { return f, nil }
func (f *pgxFake) Commit(context.Context) error                     { f.committed = true; return nil }
func (f *pgxFake) Rollback(context.Context) error                   { f.rolledBack = true; return nil }
func (f *pgxFake) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (f *pgxFake) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return nil }
func (f *pgxFake) LargeObjects() pgx.LargeObjects                         { return pgx.LargeObjects{} }
func (f *pgxFake) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (f *pgxFake) Conn() *pgx.Conn { return nil }

func TestTraced_EmitsPerStatement(t *testing.T) {
	ctx := context.Background()
	rec := &recordingTracer{}
	q := traced{q: &pgxFake{row: pgxRow{v: 1}}, tracer: rec}

	tag, err := q.Exec(ctx, "UPDATE classes SET status = $1", "Absent")
	if err != nil || tag.RowsAffected() != 1 || tag.String() != "UPDATE 1" {
		t.Fatalf("Exec = %v, %v", tag, err)
	}
	var one int
	if err := q.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil || one != 1 {
		t.Fatalf("QueryRow = %d, %v", one, err)
	}
	if _, err := q.Query(ctx, "SELECT broken"); err == nil {
		t.Fatalf("Query should fail")
	}
	if got := rec.joined(); got != "UPDATE classes SET status = $1;SELECT 1;SELECT broken!" {
		t.Fatalf("traced = %q", got)
	}
}

func TestTraced_NoRowsIsNotAnError(t *testing.T) {
	rec := &recordingTracer{}
	q := traced{q: &pgxFake{row: pgxRow{err: pgx.ErrNoRows}}, tracer: rec}

	var v int
	if err := q.QueryRow(context.Background(), "SELECT id FROM classes WHERE id = $1", 1).Scan(&v); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("Scan err = %v", err)
	}
	if rec.joined() != "SELECT id FROM classes WHERE id = $1" {
		t.Fatalf("no rows should trace as success, got %q", rec.joined())
	}
}

func TestTraced_NilTracer(t *testing.T) {
	q := traced{q: &pgxFake{}}
	if _, err := q.Exec(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("Exec with nil tracer: %v", err)
	}
}

func TestRunTx(t *testing.T) {
	ctx := context.Background()

	ok := &pgxFake{}
	err := runTx(ctx, ok, traced{q: ok}, func(q RowQuerier) error {
		_, err := q.Exec(ctx, "UPDATE classes SET status = 'Completed' WHERE id = 1")
		return err
	})
	if err != nil || !ok.committed || ok.rolledBack {
		t.Fatalf("commit path: err=%v committed=%v rolledBack=%v", err, ok.committed, ok.rolledBack)
	}

	bad := &pgxFake{}
	boom := errors.New("boom")
	err = runTx(ctx, bad, traced{q: bad}, func(RowQuerier) error { return boom })
	if !errors.Is(err, boom) || bad.committed || !bad.rolledBack {
		t.Fatalf("rollback path: err=%v committed=%v rolledBack=%v", err, bad.committed, bad.rolledBack)
	}
}
