// Package sqlite provides the SQLite-backed metrics history store.
//
// The database lives under the portfolio data directory and is opened
// with WAL mode. Schema changes are applied through embedded,
// numbered migration files on open.
package sqlite
