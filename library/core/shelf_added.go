package core

import (
	"time"
)

// ShelfAddedEventType is the event type identifier.
const ShelfAddedEventType = "ShelfAdded"

// ShelfAdded represents when a shelf is added.
// ReconciledCopies is the number of inventory copies that were placed on the new shelf.
type ShelfAdded struct {
	Subject          SubjectString
	ShelfNumber      int
	ReconciledCopies int
	OccurredAt       OccurredAtTS
}

// BuildShelfAdded creates a new ShelfAdded event.
func BuildShelfAdded(shelf *Shelf, reconciledCopies int, occurredAt time.Time) ShelfAdded {
	return ShelfAdded{
		Subject:          shelf.Subject(),
		ShelfNumber:      shelf.ShelfNumber(),
		ReconciledCopies: reconciledCopies,
		OccurredAt:       ToOccurredAt(occurredAt),
	}
}

func (e ShelfAdded) EventType() string {
	return ShelfAddedEventType
}

func (e ShelfAdded) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e ShelfAdded) IsErrorEvent() bool {
	return false
}
