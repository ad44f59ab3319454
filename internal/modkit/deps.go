package modkit

import (
	"time"

	"tutorhub/internal/modkit/repokit"
	"tutorhub/internal/platform/config"
	"tutorhub/internal/platform/logger"
	"tutorhub/internal/platform/store"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse // nil when ClickHouse is not configured

	// Now is the clock, nil means time.Now
	Now func() time.Time
}

// Clock returns the configured clock
func (d Deps) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Logger returns Log or a component logger named after the module
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
