package memengine

import (
	"context"
	"errors"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-ledger/eventstore"
)

const (
	logMsgQueryCompleted      = "query completed"
	logMsgEventsAppended      = "events appended"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgQueryCanceled       = "query canceled"
	logAttrError              = "error"
	logAttrEventCount         = "event_count"
	logAttrFilterItems        = "filter_items"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
)

// EventStore keeps appended events in insertion order and hands out strictly increasing sequence numbers.
// It is safe for concurrent use.
type EventStore struct {
	mu     sync.RWMutex
	events eventstore.StorableEvents
	logger eventstore.Logger
}

// NewEventStore creates an empty EventStore with optional configuration.
func NewEventStore(options ...Option) *EventStore {
	es := &EventStore{
		events: make(eventstore.StorableEvents, 0),
	}

	for _, option := range options {
		option(es)
	}

	return es
}

// Query retrieves the events matching the provided eventstore.Filter criteria
// as well as the MaxSequenceNumberUint for this "dynamic event stream" at the time of the query.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	if err := ctx.Err(); err != nil {
		es.logWarn(logMsgQueryCanceled, logAttrError, err.Error())

		return eventstore.StorableEvents{}, 0, errors.Join(eventstore.ErrQueryingEventsFailed, err)
	}

	es.mu.RLock()
	defer es.mu.RUnlock()

	eventStream, maxSequenceNumber := es.matching(filter)

	es.logInfo(logMsgQueryCompleted, logAttrEventCount, len(eventStream), logAttrFilterItems, len(filter.Items()))

	return eventStream, maxSequenceNumber, nil
}

// Append appends one or multiple eventstore.StorableEvent(s) respecting concurrency constraints
// for the "dynamic event stream" selected by the provided eventstore.Filter and the expected MaxSequenceNumberUint.
//
// The provided eventstore.Filter should be the same as the one used for the Query before making the decisions.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		return errors.Join(eventstore.ErrAppendingEventFailed, err)
	}

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	es.mu.Lock()
	defer es.mu.Unlock()

	_, actualMaxSequenceNumber := es.matching(filter)
	if actualMaxSequenceNumber != expectedMaxSequenceNumber {
		es.logWarn(
			logMsgConcurrencyConflict,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actualMaxSequenceNumber,
		)

		return eventstore.ErrConcurrencyConflict
	}

	next := uint(len(es.events))
	for _, e := range allEvents {
		next++
		e.SequenceNumber = next
		es.events = append(es.events, e)
	}

	es.logInfo(logMsgEventsAppended, logAttrEventCount, len(allEvents))

	return nil
}

// Len returns the total number of stored events.
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(es.events)
}

func (es *EventStore) matching(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, e := range es.events {
		if !matchesFilter(filter, e) {
			continue
		}

		eventStream = append(eventStream, e)
		maxSequenceNumber = e.SequenceNumber
	}

	return eventStream, maxSequenceNumber
}

func matchesFilter(filter eventstore.Filter, event eventstore.StorableEvent) bool {
	if filter.IsEmpty() {
		return true
	}

	for _, item := range filter.Items() {
		if matchesItem(item, event) {
			return true
		}
	}

	return false
}

func matchesItem(item eventstore.FilterItem, event eventstore.StorableEvent) bool {
	if len(item.EventTypes()) == 0 && len(item.Predicates()) == 0 {
		return false
	}

	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), event.EventType) {
		return false
	}

	if len(item.Predicates()) == 0 {
		return true
	}

	matched := 0
	for _, p := range item.Predicates() {
		if payloadHas(event.PayloadJSON, p) {
			matched++
		}
	}

	if item.AllPredicatesMustMatch() {
		return matched == len(item.Predicates())
	}

	return matched > 0
}

func payloadHas(payloadJSON []byte, predicate eventstore.FilterPredicate) bool {
	value := jsoniter.ConfigFastest.Get(payloadJSON, predicate.Key())
	if value.LastError() != nil {
		return false
	}

	switch value.ValueType() {
	case jsoniter.StringValue, jsoniter.NumberValue, jsoniter.BoolValue:
		return value.ToString() == predicate.Val()
	default:
		return false
	}
}

func (es *EventStore) logInfo(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Info(msg, args...)
	}
}

func (es *EventStore) logWarn(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Warn(msg, args...)
	}
}
