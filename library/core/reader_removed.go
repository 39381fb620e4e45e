package core

import (
	"time"
)

// ReaderRemovedEventType is the event type identifier.
const ReaderRemovedEventType = "ReaderRemoved"

// ReaderRemoved represents when a reader without books is removed from the library.
type ReaderRemoved struct {
	CardNumber CardNumberInt
	OccurredAt OccurredAtTS
}

// BuildReaderRemoved creates a new ReaderRemoved event.
func BuildReaderRemoved(reader *Reader, occurredAt time.Time) ReaderRemoved {
	return ReaderRemoved{
		CardNumber: reader.CardNumber(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e ReaderRemoved) EventType() string {
	return ReaderRemovedEventType
}

func (e ReaderRemoved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ReaderRemoved) IsErrorEvent() bool {
	return false
}
