// Package pg provides a Postgres client using pgxpool with optional query tracing
package pg

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config configures pgxpool for pg
type Config struct {
	URL      string
	AppName  string
	MaxConns int32
	SlowMs   int

	// StatementTimeout is the session default, 0 keeps the server's
	StatementTimeout time.Duration

	// Tracer receives every statement, nil disables tracing
	Tracer QueryTracer
}

// PG is a postgres client with pool and optional tracer
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// poolConfig parses the url and applies cfg over it
func poolConfig(cfg Config) (*pgxpool.Config, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	params := pcfg.ConnConfig.RuntimeParams
	if cfg.AppName != "" {
		params["application_name"] = cfg.AppName
	}
	if cfg.StatementTimeout > 0 {
		params["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}
	return pcfg, nil
}

// Open builds the pool; it is lazy, callers decide when to ping
func Open(ctx context.Context, cfg Config) (*PG, error) {
	pcfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{Pool: pool, Tracer: cfg.Tracer, SlowMs: cfg.SlowMs}, nil
}

// Close closes the pool
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
