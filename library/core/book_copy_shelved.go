package core

import (
	"time"
)

// BookCopyShelvedEventType is the event type identifier.
const BookCopyShelvedEventType = "BookCopyShelved"

// BookCopyShelved represents when one copy of a book is placed on the shelf of its subject.
type BookCopyShelved struct {
	ISBN          ISBNString
	Subject       SubjectString
	ShelfNumber   int
	CopiesOnShelf int
	OccurredAt    OccurredAtTS
}

// BuildBookCopyShelved creates a new BookCopyShelved event.
func BuildBookCopyShelved(book *Book, shelf *Shelf, occurredAt time.Time) BookCopyShelved {
	copies, _ := shelf.Copies(book)

	return BookCopyShelved{
		ISBN:          book.ISBN(),
		Subject:       shelf.Subject(),
		ShelfNumber:   shelf.ShelfNumber(),
		CopiesOnShelf: copies,
		OccurredAt:    ToOccurredAt(occurredAt),
	}
}

func (e BookCopyShelved) EventType() string {
	return BookCopyShelvedEventType
}

func (e BookCopyShelved) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BookCopyShelved) IsErrorEvent() bool {
	return false
}
