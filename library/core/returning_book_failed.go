package core

import (
	"time"
)

// ReturningBookFailedEventType is the event type identifier.
const ReturningBookFailedEventType = "ReturningBookFailed"

// ReturningBookFailed represents when returning a book fails due to business rule violations.
type ReturningBookFailed struct {
	ISBN        ISBNString
	CardNumber  CardNumberInt
	FailureCode Code
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningBookFailed creates a new ReturningBookFailed event.
func BuildReturningBookFailed(
	book *Book,
	reader *Reader,
	failure error,
	occurredAt time.Time,
) ReturningBookFailed {

	return ReturningBookFailed{
		ISBN:        book.ISBN(),
		CardNumber:  reader.CardNumber(),
		FailureCode: CodeOf(failure),
		FailureInfo: failure.Error(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e ReturningBookFailed) EventType() string {
	return ReturningBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e ReturningBookFailed) IsErrorEvent() bool {
	return true
}
