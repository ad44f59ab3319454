// Package repokit provides common types and helpers for repository implementations
package repokit

import "tutorhub/internal/platform/store"

type (
	// Queryer is the minimal read and write surface for SQL repos
	Queryer = store.RowQuerier

	// TxRunner can execute a function inside a transaction
	TxRunner = store.TxRunner

	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)
