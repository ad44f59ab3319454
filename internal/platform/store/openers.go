package store

import (
	"context"
	"fmt"
	"time"

	"tutorhub/internal/platform/store/ch"
	"tutorhub/internal/platform/store/pg"
)

const (
	defaultConnectRetries = 20
	defaultPingTimeout    = 3 * time.Second
	backoffStart          = 150 * time.Millisecond
	backoffCeiling        = 2 * time.Second
)

// openPG opens the pool, waits until it answers a ping, then wraps it in the sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:              cfg.PG.URL,
		AppName:          cfg.AppName,
		MaxConns:         cfg.PG.MaxConns,
		SlowMs:           cfg.PG.SlowQueryMs,
		StatementTimeout: cfg.PG.StatementTimeout,
		Tracer:           tracer,
	})
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = defaultConnectRetries
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	err = retryPing(ctx, attempts, timeout, func(ctx context.Context) error {
		// the pool directly, so boot pings do not show up as traced SQL
		return p.Pool.Ping(ctx)
	})
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return newPGAdapter(p), nil
}

// openCH opens the clickhouse client and wraps it in the Clickhouse seam
func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := ch.Open(ctx, ch.Config{
		URL:        cfg.CH.URL,
		ClientName: cfg.CH.ClientName,
		ClientTag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return nil, fmt.Errorf("clickhouse: %w", err)
	}
	return newCHAdapter(c), nil
}

// retryPing calls ping until it succeeds, ctx ends, or attempts run out
// the wait between attempts doubles from backoffStart up to backoffCeiling
func retryPing(ctx context.Context, attempts int, timeout time.Duration, ping func(context.Context) error) error {
	var lastErr error
	backoff := backoffStart
	for i := 0; i < attempts; i++ {
		toCtx, cancel := context.WithTimeout(ctx, timeout)
		lastErr = ping(toCtx)
		cancel()
		if lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, backoffCeiling)
	}
	return fmt.Errorf("ping failed after %d attempts: %w", attempts, lastErr)
}
