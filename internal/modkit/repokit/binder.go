package repokit

import "context"

// Binder binds a domain repo to a specific Queryer (the pool or a tx)
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc turns a constructor into a Binder
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// InTx runs fn with a repo bound to a fresh transaction on db
// the tx commits when fn returns nil and rolls back otherwise
func InTx[T any](ctx context.Context, db TxRunner, b Binder[T], fn func(T) error) error {
	return db.Tx(ctx, func(q Queryer) error { return fn(b.Bind(q)) })
}
