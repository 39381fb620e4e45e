package core

import (
	"time"
)

// BookCopyReturnedByReaderEventType is the event type identifier.
const BookCopyReturnedByReaderEventType = "BookCopyReturnedByReader"

// BookCopyReturnedByReader represents when a reader returns a book copy to its shelf.
type BookCopyReturnedByReader struct {
	ISBN       ISBNString
	Subject    SubjectString
	CardNumber CardNumberInt
	OccurredAt OccurredAtTS
}

// BuildBookCopyReturnedByReader creates a new BookCopyReturnedByReader event.
func BuildBookCopyReturnedByReader(book *Book, reader *Reader, occurredAt time.Time) BookCopyReturnedByReader {
	return BookCopyReturnedByReader{
		ISBN:       book.ISBN(),
		Subject:    book.Subject(),
		CardNumber: reader.CardNumber(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyReturnedByReader) EventType() string {
	return BookCopyReturnedByReaderEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReturnedByReader) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyReturnedByReader) IsErrorEvent() bool {
	return false
}
