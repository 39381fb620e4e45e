package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-ledger/eventstore"
	"github.com/AntonStoeckl/library-ledger/library/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookCopyAddedToInventoryEventType:
		return unmarshalAs[core.BookCopyAddedToInventory](storableEvent.PayloadJSON)

	case core.BookCopyShelvedEventType:
		return unmarshalAs[core.BookCopyShelved](storableEvent.PayloadJSON)

	case core.ShelfAddedEventType:
		return unmarshalAs[core.ShelfAdded](storableEvent.PayloadJSON)

	case core.BookCopyLentToReaderEventType:
		return unmarshalAs[core.BookCopyLentToReader](storableEvent.PayloadJSON)

	case core.BookCopyReturnedByReaderEventType:
		return unmarshalAs[core.BookCopyReturnedByReader](storableEvent.PayloadJSON)

	case core.ReaderRegisteredEventType:
		return unmarshalAs[core.ReaderRegistered](storableEvent.PayloadJSON)

	case core.ReaderRemovedEventType:
		return unmarshalAs[core.ReaderRemoved](storableEvent.PayloadJSON)

	case core.CheckingOutBookFailedEventType:
		return unmarshalAs[core.CheckingOutBookFailed](storableEvent.PayloadJSON)

	case core.ReturningBookFailedEventType:
		return unmarshalAs[core.ReturningBookFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalAs[T core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event T

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
