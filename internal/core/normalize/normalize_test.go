package normalize

import (
	"sync"
	"testing"
)

func TestDiscordHandle(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain", "mara#0420", "mara#0420"},
		{"keeps case", "Mara#0420", "Mara#0420"},
		{"at sign and spaces", "  @Mara#0420 ", "Mara#0420"},
		{"sharp s kept", "Straße#0001", "Straße#0001"},
		{"final sigma kept", "Σοφός#0002", "Σοφός#0002"},
		{"ligature kept", "\ufb01ona#0003", "\ufb01ona#0003"},
		{"fullwidth kept", "ＭＡＲＡ#0420", "ＭＡＲＡ#0420"},
		{"new style username", "tutor.mara", "tutor.mara"},
		{"only at", "@", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DiscordHandle(c.in); got != c.want {
				t.Fatalf("DiscordHandle(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		name  string
		parts []string
		want  string
	}{
		{"level and subject", []string{"B2", "English"}, "B2 English"},
		{"keeps case", []string{"a1", "German"}, "a1 German"},
		{"collapses whitespace", []string{" C1 ", "Business\t English "}, "C1 Business English"},
		{"skips blanks", []string{"", "  ", "Maths"}, "Maths"},
		{"composes accents", []string{"Cafe\u0301"}, "Caf\u00e9"},
		{"drops format runes", []string{"Fr\u200bench"}, "French"},
		{"nothing", nil, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Label(c.parts...); got != c.want {
				t.Fatalf("Label(%q) = %q, want %q", c.parts, got, c.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	if Sanitize("") != "" {
		t.Fatalf("empty should stay empty")
	}
	if got := Sanitize("a\tb\nc\r"); got != "a\tb\nc\r" {
		t.Fatalf("allowed whitespace dropped: %q", got)
	}
	if got := Sanitize("a\x01b\u0085c\x7f"); got != "abc" {
		t.Fatalf("Sanitize = %q", got)
	}
}

func TestLabel_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Label("B2", "Fr\u200bench"); got != "B2 French" {
					t.Errorf("got %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
