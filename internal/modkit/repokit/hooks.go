package repokit

import (
	"context"
	"fmt"
	"time"
)

// BeginHook runs at the start of a transaction with the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps a TxRunner and runs hooks before fn inside the same tx
// with no hooks the runner is returned as is
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	if len(hooks) == 0 {
		return inner
	}
	return hookedTx{inner: inner, hooks: hooks}
}

// StatementTimeout bounds every statement in the tx; d <= 0 is a no-op hook
func StatementTimeout(d time.Duration) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		if d <= 0 {
			return nil
		}
		// SET LOCAL takes no bind parameters
		_, err := q.Exec(ctx, fmt.Sprintf("SET LOCAL statement_timeout = %d", d.Milliseconds()))
		return err
	}
}

type hookedTx struct {
	inner TxRunner
	hooks []BeginHook
}

// Tx starts a tx on inner then runs all hooks before fn
func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.inner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

func (h hookedTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return h.inner.Exec(ctx, sql, args...)
}

func (h hookedTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return h.inner.Query(ctx, sql, args...)
}

func (h hookedTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return h.inner.QueryRow(ctx, sql, args...)
}
