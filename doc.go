// Package carteira is the ledger engine of a family finance dashboard.
//
// It holds the canonical collections (transactions, categories, accounts,
// cards, members, goals) in memory for the lifetime of a session and exposes
// the operations a presentation layer needs: validated mutations, composable
// filters, decimal aggregations and the expansion rules that turn one
// user-entered transaction into an installment chain or a monthly recurring
// series.
//
// The engine is deliberately free of I/O: no persistence, no network, no
// scheduling. A [Book] is an explicit handle; every derived quantity is a pure
// function of its current state.
package carteira
