package core

import (
	"time"
)

// BookCopyAddedToInventoryEventType is the event type identifier.
const BookCopyAddedToInventoryEventType = "BookCopyAddedToInventory"

// BookCopyAddedToInventory represents when one copy of a book is added to the library's inventory.
type BookCopyAddedToInventory struct {
	ISBN              ISBNString
	Title             string
	Subject           SubjectString
	PageCount         int
	Author            string
	CopiesInInventory int
	OccurredAt        OccurredAtTS
}

// BuildBookCopyAddedToInventory creates a new BookCopyAddedToInventory event.
func BuildBookCopyAddedToInventory(book *Book, copiesInInventory int, occurredAt time.Time) BookCopyAddedToInventory {
	return BookCopyAddedToInventory{
		ISBN:              book.ISBN(),
		Title:             book.Title(),
		Subject:           book.Subject(),
		PageCount:         book.PageCount(),
		Author:            book.Author(),
		CopiesInInventory: copiesInInventory,
		OccurredAt:        ToOccurredAt(occurredAt),
	}
}

func (e BookCopyAddedToInventory) EventType() string {
	return BookCopyAddedToInventoryEventType
}

func (e BookCopyAddedToInventory) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BookCopyAddedToInventory) IsErrorEvent() bool {
	return false
}
