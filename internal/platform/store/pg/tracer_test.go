package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   1  ", "select 1"},
		{"SELECT\t*\nFROM\r\tclasses WHERE  id =  $1", "SELECT * FROM classes WHERE id = $1"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

type logLine struct {
	Level     string  `json:"level"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	SQL       string  `json:"sql"`
	Args      []any   `json:"args"`
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	Component string  `json:"component"`
}

func emit(t *testing.T, ev QueryEvent) logLine {
	t.Helper()
	var buf bytes.Buffer
	Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel)).OnQuery(context.Background(), ev)

	var line logLine
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal log: %v\nraw=%s", err, buf.String())
	}
	return line
}

func TestTracer_Levels(t *testing.T) {
	t.Parallel()

	base := QueryEvent{
		SQL:       "SELECT count(*)\n  FROM classes\tWHERE id = $1",
		Args:      []any{7},
		ElapsedUS: 12345,
	}

	line := emit(t, base)
	if line.Level != "debug" {
		t.Fatalf("expected debug even with an error-level root, got %q", line.Level)
	}
	if math.Abs(line.ElapsedMS-12.345) > 0.0005 {
		t.Fatalf("elapsed_ms = %v", line.ElapsedMS)
	}
	if line.SQL != "SELECT count(*) FROM classes WHERE id = $1" {
		t.Fatalf("sql not compacted: %q", line.SQL)
	}
	if len(line.Args) != 1 || line.Args[0].(float64) != 7 {
		t.Fatalf("args = %#v", line.Args)
	}
	if line.Message != "pg query" || line.Component != "pg" {
		t.Fatalf("message/component = %q/%q", line.Message, line.Component)
	}

	slow := base
	slow.Slow = true
	if line := emit(t, slow); line.Level != "warn" || !line.Slow {
		t.Fatalf("slow query: %+v", line)
	}

	failed := slow
	failed.Err = errors.New("boom")
	if line := emit(t, failed); line.Level != "error" || line.Error != "boom" {
		t.Fatalf("failed query: %+v", line)
	}
}
