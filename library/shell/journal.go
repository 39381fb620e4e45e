package shell

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-ledger/eventstore"
	"github.com/AntonStoeckl/library-ledger/library/core"
)

const (
	logMsgEventRecorded      = "event recorded"
	logMsgRecordingFailed    = "recording event failed"
	logAttrEventType         = "event_type"
	logAttrCorrelationID     = "correlation_id"
	logAttrRecordingAttempts = "attempts"
	logAttrError             = "error"
)

// ErrRecordingEventFailed is returned when a domain event could not be appended to the journal.
var ErrRecordingEventFailed = errors.New("recording event failed")

// EventStore is the subset of an event store engine the Journal needs.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)

	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		event eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Journal records the domain events of a core.Library into an EventStore and reads them back.
//
// All events recorded by one Journal share a correlation id, each event names the previous one as its cause.
type Journal struct {
	mu            sync.Mutex
	store         EventStore
	correlationID uuid.UUID
	lastMessageID uuid.UUID
	retryOptions  []RetryOption
	logger        eventstore.Logger
	errs          []error
}

// JournalOption defines a functional option for configuring a Journal.
type JournalOption func(*Journal)

// WithJournalLogger sets the logger for the Journal.
func WithJournalLogger(logger eventstore.Logger) JournalOption {
	return func(j *Journal) {
		j.logger = logger
	}
}

// WithRetryOptions configures the retries on concurrency conflicts while appending.
func WithRetryOptions(options ...RetryOption) JournalOption {
	return func(j *Journal) {
		j.retryOptions = append(j.retryOptions, options...)
	}
}

func NewJournal(store EventStore, options ...JournalOption) *Journal {
	correlationID := uuid.New()

	j := &Journal{
		store:         store,
		correlationID: correlationID,
		lastMessageID: correlationID,
	}

	for _, option := range options {
		option(j)
	}

	if j.logger != nil {
		j.retryOptions = append(j.retryOptions, WithRetryLogger(j.logger))
	}

	return j
}

// CorrelationID identifies this journal session.
func (j *Journal) CorrelationID() CorrelationID {
	return j.correlationID.String()
}

// Record implements core.Recorder. Failures are logged and kept, see Err.
func (j *Journal) Record(event core.DomainEvent) {
	if err := j.Append(context.Background(), event); err != nil {
		j.mu.Lock()
		j.errs = append(j.errs, err)
		j.mu.Unlock()
	}
}

// Err returns all failures of Record so far, nil if there were none.
func (j *Journal) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return errors.Join(j.errs...)
}

// Append maps event to a storable event and appends it to the stream of the book, reader or shelf it is about.
func (j *Journal) Append(ctx context.Context, event core.DomainEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	messageID := uuid.New()
	metadata := BuildEventMetadata(messageID, j.lastMessageID, j.correlationID)

	storableEvent, err := StorableEventFrom(event, metadata)
	if err != nil {
		j.logRecordingFailed(event, err)

		return errors.Join(ErrRecordingEventFailed, err)
	}

	filter := StreamFilterFor(event)

	meta, err := RetryWithExponentialBackoff(
		ctx,
		func(ctx context.Context) error {
			_, maxSequenceNumber, err := j.store.Query(ctx, filter)
			if err != nil {
				return err
			}

			return j.store.Append(ctx, filter, maxSequenceNumber, storableEvent)
		},
		j.retryOptions...,
	)

	if err != nil {
		j.logRecordingFailed(event, err, logAttrRecordingAttempts, meta.Attempts)

		return errors.Join(ErrRecordingEventFailed, err)
	}

	j.lastMessageID = messageID

	if j.logger != nil {
		j.logger.Debug(
			logMsgEventRecorded,
			logAttrEventType, event.EventType(),
			logAttrCorrelationID, metadata.CorrelationID,
			logAttrRecordingAttempts, meta.Attempts,
		)
	}

	return nil
}

// History returns the recorded events matching filter in recording order.
func (j *Journal) History(ctx context.Context, filter eventstore.Filter) (EventEnvelopes, error) {
	storableEvents, _, err := j.store.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	return EventEnvelopesFrom(storableEvents)
}

func (j *Journal) logRecordingFailed(event core.DomainEvent, err error, args ...any) {
	if j.logger != nil {
		j.logger.Error(logMsgRecordingFailed, append([]any{logAttrEventType, event.EventType(), logAttrError, err.Error()}, args...)...)
	}
}

// StreamFilterFor selects the events about the same book, reader or shelf as event.
func StreamFilterFor(event core.DomainEvent) eventstore.Filter {
	switch e := event.(type) {
	case core.BookCopyAddedToInventory:
		return FilterForISBN(e.ISBN)
	case core.BookCopyShelved:
		return FilterForISBN(e.ISBN)
	case core.BookCopyLentToReader:
		return FilterForISBN(e.ISBN)
	case core.BookCopyReturnedByReader:
		return FilterForISBN(e.ISBN)
	case core.CheckingOutBookFailed:
		return FilterForISBN(e.ISBN)
	case core.ReturningBookFailed:
		return FilterForISBN(e.ISBN)
	case core.ReaderRegistered:
		return FilterForCard(e.CardNumber)
	case core.ReaderRemoved:
		return FilterForCard(e.CardNumber)
	case core.ShelfAdded:
		return FilterForSubject(e.Subject)
	default:
		return eventstore.BuildEventFilter().MatchingAnyEvent()
	}
}

// FilterForISBN selects every event about the book with the isbn.
func FilterForISBN(isbn core.ISBNString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("ISBN", isbn)).
		Finalize()
}

// FilterForCard selects every event about the reader with the card number.
func FilterForCard(cardNumber core.CardNumberInt) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("CardNumber", strconv.Itoa(cardNumber))).
		Finalize()
}

// FilterForSubject selects the shelf events for the subject and the book events of that subject.
func FilterForSubject(subject core.SubjectString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.ShelfAddedEventType, core.BookCopyShelvedEventType).
		AndAnyPredicateOf(eventstore.P("Subject", subject)).
		OrMatching().
		AnyEventTypeOf(
			core.BookCopyAddedToInventoryEventType,
			core.BookCopyLentToReaderEventType,
			core.BookCopyReturnedByReaderEventType,
		).
		AndAnyPredicateOf(eventstore.P("Subject", subject)).
		Finalize()
}
