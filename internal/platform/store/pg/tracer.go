package pg

import (
	"context"
	"strings"

	"tutorhub/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer returns a QueryTracer that logs every statement regardless of the root level
// failed statements log at error, slow ones at warn, the rest at debug
func Tracer(root logger.Logger) QueryTracer {
	ll := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &zlTracer{log: ll}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	var evt *zerolog.Event
	switch {
	case ev.Err != nil:
		evt = z.log.Error().Err(ev.Err)
	case ev.Slow:
		evt = z.log.Warn()
	default:
		evt = z.log.Debug()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Msg("pg query")
}

// compact folds all whitespace runs into single spaces and trims the ends
func compact(s string) string { return strings.Join(strings.Fields(s), " ") }
