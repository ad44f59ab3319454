package version

import "testing"

func TestInfo(t *testing.T) {
	got := Info()
	if got.Service != "tutorhub-api" || got.Version == "" || got.Commit == "" || got.Date == "" {
		t.Fatalf("Info() = %+v", got)
	}
}
