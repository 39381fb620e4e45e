package core

import (
	"time"
)

type DomainEvents = []DomainEvent

// DomainEvent is the fact a Library hands to its Recorder after a change, or after a rejected checkout or return.
// Its exported fields are its payload in the journal.
type DomainEvent interface {
	EventType() string
	HasOccurredAt() time.Time

	// IsErrorEvent is true for CheckingOutBookFailed and ReturningBookFailed.
	IsErrorEvent() bool
}
