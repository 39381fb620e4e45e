package shell

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-ledger/eventstore"
	"github.com/AntonStoeckl/library-ledger/library/core"
)

// ErrEncodingEventFailed is returned when a domain event can't be turned into a journal entry.
var ErrEncodingEventFailed = errors.New("encoding event failed")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StorableEventFrom encodes event as a journal entry. The payload carries the exported fields of the event,
// which are also what the Filter predicates of FilterForISBN, FilterForCard and FilterForSubject match on.
func StorableEventFrom(event core.DomainEvent, metadata EventMetadata) (eventstore.StorableEvent, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return eventstore.StorableEvent{}, encodingFailed(event, err)
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return eventstore.StorableEvent{}, encodingFailed(event, err)
	}

	storableEvent, err := eventstore.BuildStorableEvent(event.EventType(), event.HasOccurredAt(), payloadJSON, metadataJSON)
	if err != nil {
		return eventstore.StorableEvent{}, encodingFailed(event, err)
	}

	return storableEvent, nil
}

func encodingFailed(event core.DomainEvent, err error) error {
	return errors.Join(fmt.Errorf("%w: %s", ErrEncodingEventFailed, event.EventType()), err)
}
