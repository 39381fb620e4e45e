package memengine

import (
	"github.com/AntonStoeckl/library-ledger/eventstore"
)

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore)

// WithLogger sets the logger for the EventStore.
//
// Debug level: every matched query with its filter size
// Info level: event counts of queries and appends
// Warn level: concurrency conflicts.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) {
		es.logger = logger
	}
}

// WithCapacity pre-allocates room for the expected number of events.
func WithCapacity(capacity int) Option {
	return func(es *EventStore) {
		if capacity > 0 {
			es.events = make(eventstore.StorableEvents, 0, capacity)
		}
	}
}
