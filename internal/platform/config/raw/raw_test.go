package raw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", "  tutorhub-api ")
	t.Setenv("LOG_FORMAT", "   ")
	log := New().Prefix("LOG_")

	assert.Equal(t, "tutorhub-api", log.Get("SERVICE", "tutorhub"))
	assert.Equal(t, "console", log.Get("FORMAT", "console"), "blank falls back")
	assert.Equal(t, "info", log.Get("LEVEL", "info"))
	assert.Equal(t, "tutorhub-api", New().Get("LOG_SERVICE", ""), "root sees full keys")
}

func TestGetBool(t *testing.T) {
	log := New().Prefix("LOG_")
	cases := map[string]struct {
		val  string
		def  bool
		want bool
	}{
		"one":         {"1", false, true},
		"upper yes":   {"YES", false, true},
		"padded":      {"  true ", false, true},
		"zero":        {"0", true, false},
		"garbage":     {"sure", true, false},
		"unset true":  {"", true, true},
		"unset false": {"", false, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("LOG_CALLER", tc.val)
			assert.Equal(t, tc.want, log.GetBool("CALLER", tc.def))
		})
	}
}

func TestGetInt(t *testing.T) {
	log := New().Prefix("LOG_")
	cases := map[string]struct {
		val  string
		want int
	}{
		"plain":    {"10", 10},
		"padded":   {" 4 ", 4},
		"zero":     {"0", 0},
		"negative": {"-2", 5},
		"suffix":   {"10x", 5},
		"unset":    {"", 5},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("LOG_SAMPLE_EVERY", tc.val)
			assert.Equal(t, tc.want, log.GetInt("SAMPLE_EVERY", 5))
		})
	}
}

func TestPrefix_Nested(t *testing.T) {
	t.Setenv("CORE_API_LOG_LEVEL", "debug")
	t.Setenv("LOG_LEVEL", "warn")

	nested := New().Prefix("CORE_API_").Prefix("LOG_")
	assert.Equal(t, "debug", nested.Get("LEVEL", ""))
	assert.Equal(t, "warn", New().Prefix("LOG_").Get("LEVEL", ""))
}
