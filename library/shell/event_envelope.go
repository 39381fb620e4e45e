package shell

import (
	"errors"
	"fmt"
	"time"

	"github.com/AntonStoeckl/library-ledger/eventstore"
	"github.com/AntonStoeckl/library-ledger/library/core"
)

// ErrReadingJournalEntryFailed is returned when a journal entry can't be turned back into an EventEnvelope.
var ErrReadingJournalEntryFailed = errors.New("reading journal entry failed")

type EventEnvelopes = []EventEnvelope

// EventEnvelope is one journal entry as read back: the domain event, its metadata, and its sequence number.
type EventEnvelope struct {
	DomainEvent    core.DomainEvent
	EventMetadata  EventMetadata
	SequenceNumber uint
}

func BuildEventEnvelope(domainEvent core.DomainEvent, eventMetadata EventMetadata, sequenceNumber uint) EventEnvelope {
	return EventEnvelope{
		DomainEvent:    domainEvent,
		EventMetadata:  eventMetadata,
		SequenceNumber: sequenceNumber,
	}
}

// String renders the entry as one history line.
func (e EventEnvelope) String() string {
	return fmt.Sprintf(
		"%4d %-26s %s %+v",
		e.SequenceNumber,
		e.DomainEvent.EventType(),
		e.DomainEvent.HasOccurredAt().Format(time.RFC3339),
		e.DomainEvent,
	)
}

func EventEnvelopeFrom(storableEvent eventstore.StorableEvent) (EventEnvelope, error) {
	metadata, err := EventMetadataFrom(storableEvent)
	if err != nil {
		return EventEnvelope{}, readingFailed(storableEvent, err)
	}

	domainEvent, err := DomainEventFrom(storableEvent)
	if err != nil {
		return EventEnvelope{}, readingFailed(storableEvent, err)
	}

	return BuildEventEnvelope(domainEvent, metadata, storableEvent.SequenceNumber), nil
}

// EventEnvelopesFrom reads back a whole query result. It stops at the first entry that can't be read.
func EventEnvelopesFrom(storableEvents eventstore.StorableEvents) (EventEnvelopes, error) {
	envelopes := make(EventEnvelopes, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		envelope, err := EventEnvelopeFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		envelopes = append(envelopes, envelope)
	}

	return envelopes, nil
}

// Failures keeps the envelopes of rejected checkouts and returns.
func Failures(envelopes EventEnvelopes) EventEnvelopes {
	failures := make(EventEnvelopes, 0)

	for _, envelope := range envelopes {
		if envelope.DomainEvent.IsErrorEvent() {
			failures = append(failures, envelope)
		}
	}

	return failures
}

func readingFailed(storableEvent eventstore.StorableEvent, err error) error {
	return errors.Join(
		fmt.Errorf("%w: sequence number %d", ErrReadingJournalEntryFailed, storableEvent.SequenceNumber),
		err,
	)
}
