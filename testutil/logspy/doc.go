// Package logspy provides a slog.Handler that captures log records so tests can assert on the
// narration of the library ledger.
package logspy
