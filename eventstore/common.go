package eventstore

import (
	"errors"
)

var (
	// ErrConcurrencyConflict is returned by Append when the "dynamic event stream" selected by the Filter
	// has advanced beyond the expected MaxSequenceNumberUint.
	ErrConcurrencyConflict = errors.New("concurrency error, the event stream has advanced")

	// ErrNoEventsSupplied is returned by Append when called without any StorableEvent.
	ErrNoEventsSupplied = errors.New("no events supplied to append")

	// ErrQueryingEventsFailed is returned when a Query could not be executed.
	ErrQueryingEventsFailed = errors.New("querying events failed")

	// ErrAppendingEventFailed is returned when an Append could not be executed.
	ErrAppendingEventFailed = errors.New("appending the event failed")
)

// MaxSequenceNumberUint is a type alias for uint, representing the maximum sequence number for a "dynamic event stream".
type MaxSequenceNumberUint = uint
