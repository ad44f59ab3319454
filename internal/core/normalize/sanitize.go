package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// controls drops C0, DEL and C1 controls but keeps \n \r \t
var controls = runes.Remove(runes.Predicate(func(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	}
	return unicode.IsControl(r)
}))

// Sanitize drops invalid UTF-8 and control characters that must not reach the db or logs
func Sanitize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToValidUTF8(s, "")
	out, _, err := transform.String(controls, s)
	if err != nil {
		return s
	}
	return out
}
