package core

import (
	"time"
)

// ReaderRegisteredEventType is the event type identifier.
const ReaderRegisteredEventType = "ReaderRegistered"

// ReaderRegistered represents when a reader is added to the library.
type ReaderRegistered struct {
	CardNumber CardNumberInt
	Name       string
	Phone      string
	OccurredAt OccurredAtTS
}

// BuildReaderRegistered creates a new ReaderRegistered event.
func BuildReaderRegistered(reader *Reader, occurredAt time.Time) ReaderRegistered {
	return ReaderRegistered{
		CardNumber: reader.CardNumber(),
		Name:       reader.Name(),
		Phone:      reader.Phone(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e ReaderRegistered) EventType() string {
	return ReaderRegisteredEventType
}

func (e ReaderRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ReaderRegistered) IsErrorEvent() bool {
	return false
}
