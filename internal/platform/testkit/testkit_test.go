package testkit

import (
	"testing"
	"time"
)

var seam = func() string { return "real" }

func TestSwap_Restores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seam, func() string { return "fake" })
		if seam() != "fake" {
			t.Fatalf("swap did not take effect")
		}
	})
	if seam() != "real" {
		t.Fatalf("swap was not restored")
	}
}

func TestMustPanicAndContain(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustContain(t, "There is not class with that ID.", "not class")
}

func TestDayAndClock(t *testing.T) {
	d := Day(t, "2024-03-01")
	if d.Weekday() != time.Friday || d.Location() != time.UTC {
		t.Fatalf("Day = %v", d)
	}
	now := Clock(d)
	if !now().Equal(d) || !now().Equal(now()) {
		t.Fatalf("Clock is not frozen")
	}
}
