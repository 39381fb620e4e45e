// Package memengine provides a process-local, in-memory implementation of the eventstore contract.
//
// It backs the library ledger's journal: events live exactly as long as the process does,
// nothing is written to disk.
//
// Key features:
//   - Append with optimistic concurrency control per "dynamic event stream" (Filter + expected max sequence)
//   - Dynamic event stream filtering by event type and JSON payload predicates
//   - Optional operational logging
//
// Usage:
//
//	store := memengine.NewEventStore(memengine.WithLogger(logger))
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package memengine
