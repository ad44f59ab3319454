// Package testkit provides small helpers shared by package tests
package testkit

import (
	"strings"
	"testing"
	"time"
)

// DateLayout matches the class date wire format
const DateLayout = "2006-01-02"

// Swap replaces *target for the duration of the test, restoring it on cleanup
// seams are package globals, so tests that swap must not run in parallel
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// MustPanic fails the test unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain fails with the full haystack when needle is missing
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing %q in:\n%s", needle, haystack)
	}
}

// Day parses a YYYY-MM-DD date at UTC midnight
func Day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("bad day %q: %v", s, err)
	}
	return d
}

// Clock returns a time source frozen at now
func Clock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}
