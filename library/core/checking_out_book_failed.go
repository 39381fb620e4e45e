package core

import (
	"time"
)

// CheckingOutBookFailedEventType is the event type identifier.
const CheckingOutBookFailedEventType = "CheckingOutBookFailed"

// CheckingOutBookFailed represents when checking out a book fails due to business rule violations.
type CheckingOutBookFailed struct {
	ISBN        ISBNString
	CardNumber  CardNumberInt
	FailureCode Code
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildCheckingOutBookFailed creates a new CheckingOutBookFailed event.
func BuildCheckingOutBookFailed(
	book *Book,
	reader *Reader,
	failure error,
	occurredAt time.Time,
) CheckingOutBookFailed {

	return CheckingOutBookFailed{
		ISBN:        book.ISBN(),
		CardNumber:  reader.CardNumber(),
		FailureCode: CodeOf(failure),
		FailureInfo: failure.Error(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e CheckingOutBookFailed) EventType() string {
	return CheckingOutBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CheckingOutBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a failed operation.
func (e CheckingOutBookFailed) IsErrorEvent() bool {
	return true
}
