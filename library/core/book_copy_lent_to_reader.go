package core

import (
	"time"
)

// BookCopyLentToReaderEventType is the event type identifier.
const BookCopyLentToReaderEventType = "BookCopyLentToReader"

// BookCopyLentToReader represents when a book copy is lent to a reader.
type BookCopyLentToReader struct {
	ISBN       ISBNString
	Subject    SubjectString
	CardNumber CardNumberInt
	DueDate    DueDateString
	OccurredAt OccurredAtTS
}

// BuildBookCopyLentToReader creates a new BookCopyLentToReader event.
func BuildBookCopyLentToReader(book *Book, reader *Reader, occurredAt time.Time) BookCopyLentToReader {
	return BookCopyLentToReader{
		ISBN:       book.ISBN(),
		Subject:    book.Subject(),
		CardNumber: reader.CardNumber(),
		DueDate:    ToDueDateString(book.DueDate()),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyLentToReader) EventType() string {
	return BookCopyLentToReaderEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyLentToReader) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyLentToReader) IsErrorEvent() bool {
	return false
}
