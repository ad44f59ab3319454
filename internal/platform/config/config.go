// Package config handles application configuration via environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"tutorhub/internal/platform/logger"
)

// Conf is a namespaced view over environment variables
// New() reads unprefixed keys, Prefix("CORE_API_") scopes a service
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// key composes the fully qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value and whether it was non-empty
func (c Conf) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(key)))
	return v, v != ""
}

// Has reports whether key is set to a non-empty value
func (c Conf) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustPort returns a net/http addr like ":4000" after validating 1..65535
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma separated value, dropping blanks; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
