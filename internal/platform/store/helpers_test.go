package store

import (
	"context"
	"errors"
	"testing"

	perr "tutorhub/internal/platform/errors"
)

type pair struct {
	ID   int
	Name string
}

func scanPair(r Row) (pair, error) {
	var p pair
	return p, r.Scan(&p.ID, &p.Name)
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()

	if err := ExecOne(ctx, &fakeQuerier{tag: 1}, "UPDATE classes SET status = $1", "Completed"); err != nil {
		t.Fatalf("ExecOne(1) = %v", err)
	}
	if err := ExecOne(ctx, &fakeQuerier{tag: 0}, "UPDATE"); !errors.Is(err, ErrNoRowsAffected) {
		t.Fatalf("ExecOne(0) = %v, want ErrNoRowsAffected", err)
	}
	if err := ExecOne(ctx, &fakeQuerier{tag: 3}, "UPDATE"); err == nil {
		t.Fatalf("ExecOne(3) should fail")
	}
	boom := errors.New("boom")
	if err := ExecOne(ctx, &fakeQuerier{execErr: boom}, "UPDATE"); !errors.Is(err, boom) {
		t.Fatalf("ExecOne should pass exec errors through, got %v", err)
	}

	q := &fakeQuerier{tag: 2}
	tag, err := Exec(ctx, q, "DELETE FROM classes", 1)
	if err != nil || tag.RowsAffected() != 2 || q.lastSQL != "DELETE FROM classes" {
		t.Fatalf("Exec passthrough mismatch: %v %v %q", tag, err, q.lastSQL)
	}
}

func TestScalar(t *testing.T) {
	ctx := context.Background()

	n, err := Scalar[int64](ctx, &fakeQuerier{row: &fakeRow{val: int64(1)}}, "SELECT count(*) FROM classes WHERE id = $1", 9)
	if err != nil || n != 1 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
	if _, err := Scalar[int64](ctx, &fakeQuerier{row: &fakeRow{err: errors.New("syntax")}}, "SELEC"); err == nil {
		t.Fatalf("Scalar should surface scan errors")
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()

	got, err := One(ctx, &fakeQuerier{rows: newRows([]string{"id", "name"}, []any{1, "a"})}, scanPair, "SELECT")
	if err != nil || got != (pair{1, "a"}) {
		t.Fatalf("One = %+v, %v", got, err)
	}

	_, err = One(ctx, &fakeQuerier{rows: newRows(nil)}, scanPair, "SELECT")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("One(empty) = %v, want not found", err)
	}

	_, err = One(ctx, &fakeQuerier{rows: newRows(nil, []any{1, "a"}, []any{2, "b"})}, scanPair, "SELECT")
	if err == nil {
		t.Fatalf("One(two rows) should fail")
	}

	rowsErr := errors.New("conn reset")
	_, err = One(ctx, &fakeQuerier{rows: &fakeRows{i: -1, err: rowsErr}}, scanPair, "SELECT")
	if !errors.Is(err, rowsErr) {
		t.Fatalf("One should prefer rows.Err over not found, got %v", err)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()

	rs := newRows(nil, []any{1, "a"}, []any{2, "b"})
	got, err := Many(ctx, &fakeQuerier{rows: rs}, scanPair, "SELECT")
	if err != nil || len(got) != 2 || got[1].Name != "b" {
		t.Fatalf("Many = %+v, %v", got, err)
	}
	if !rs.closed {
		t.Fatalf("Many did not close rows")
	}

	empty, err := Many(ctx, &fakeQuerier{rows: newRows(nil)}, scanPair, "SELECT")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("Many(empty) = %#v, %v; want non-nil empty", empty, err)
	}

	if _, err := Many(ctx, &fakeQuerier{queryErr: errors.New("down")}, scanPair, "SELECT"); err == nil {
		t.Fatalf("Many should surface query errors")
	}
	bad := newRows(nil, []any{1, "a"})
	bad.scanErr = errors.New("scan")
	if _, err := Many(ctx, &fakeQuerier{rows: bad}, scanPair, "SELECT"); err == nil {
		t.Fatalf("Many should surface scan errors")
	}
}
