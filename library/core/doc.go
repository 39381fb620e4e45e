// Package core contains the domain of the library ledger:
// books, shelves organized by subject, readers who borrow books, and the Library which keeps
// its three views (global inventory counts, per-subject shelf counts, per-reader holdings) consistent.
//
// All mutation goes through Library. Every successful change, and every failed checkout or return,
// is described by a DomainEvent handed to an optional Recorder, so the shell can keep a journal.
//
// The package is single-threaded by contract: no type in here is safe for concurrent use.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
