// Package normalize canonicalizes the identifiers and labels the class API matches on or displays
//
// Handles: trim, drop one leading '@'; case is folded by the database with lower() on both sides
// Labels: sanitize, NFC, drop format runes, collapse whitespace
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// chains hold state, so each call takes its own from a pool
var labelChains = sync.Pool{New: func() any {
	return transform.Chain(
		norm.NFC,
		runes.Remove(runes.In(unicode.Cf)),
	)
}}

func apply(p *sync.Pool, s string) string {
	tr := p.Get().(transform.Transformer)
	defer func() {
		tr.Reset()
		p.Put(tr)
	}()
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}

// DiscordHandle strips what callers add around a Discord identifier and keeps the rest as stored
// the lookup compares lower() of both sides in SQL, so no case or Unicode folding happens here;
// folding in Go would disagree with lower() on ß, final sigma and ligatures
func DiscordHandle(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimPrefix(s, "@"))
}

// Label cleans display text and joins the non-empty parts with single spaces
func Label(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if f := strings.Fields(apply(&labelChains, Sanitize(p))); len(f) > 0 {
			out = append(out, strings.Join(f, " "))
		}
	}
	return strings.Join(out, " ")
}
