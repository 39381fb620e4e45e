package memengine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-ledger/eventstore"
	"github.com/AntonStoeckl/library-ledger/eventstore/memengine"
	"github.com/AntonStoeckl/library-ledger/testutil/logspy"
)

func Test_EventStore_Query_ReturnsMatchingEventsAndMaxSequence(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memengine.NewEventStore()
	givenAppended(t, store, "ShelfAdded", `{"Subject": "sci-fi", "ShelfNumber": 1}`)
	givenAppended(t, store, "ShelfAdded", `{"Subject": "education", "ShelfNumber": 2}`)
	givenAppended(t, store, "BookCopyShelved", `{"Subject": "sci-fi", "ISBN": "42-w-87"}`)

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("Subject", "sci-fi")).
		Finalize()

	// act
	events, maxSeq, err := store.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, uint(3), maxSeq)
	assert.Equal(t, "ShelfAdded", events[0].EventType)
	assert.Equal(t, "BookCopyShelved", events[1].EventType)
}

func Test_EventStore_Query_MatchesNumericPayloadFields(t *testing.T) {
	// arrange
	store := memengine.NewEventStore()
	givenAppended(t, store, "ShelfAdded", `{"Subject": "sci-fi", "ShelfNumber": 1}`)
	givenAppended(t, store, "ShelfAdded", `{"Subject": "education", "ShelfNumber": 2}`)

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("ShelfAdded").
		AndAnyPredicateOf(eventstore.P("ShelfNumber", "2")).
		Finalize()

	// act
	events, maxSeq, err := store.Query(context.Background(), filter)

	// assert
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint(2), maxSeq)
	assert.Contains(t, string(events[0].PayloadJSON), "education")
}

func Test_EventStore_Query_AllPredicatesMustMatch(t *testing.T) {
	// arrange
	store := memengine.NewEventStore()
	givenAppended(t, store, "BookCopyLentToReader", `{"ISBN": "42-w-87", "CardNumber": 1}`)
	givenAppended(t, store, "BookCopyLentToReader", `{"ISBN": "42-w-87", "CardNumber": 2}`)

	filter := eventstore.BuildEventFilter().
		Matching().
		AllPredicatesOf(eventstore.P("ISBN", "42-w-87"), eventstore.P("CardNumber", "2")).
		Finalize()

	// act
	events, _, err := store.Query(context.Background(), filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, uint(2), events[0].SequenceNumber)
}

func Test_EventStore_Query_EmptyFilterMatchesEverything(t *testing.T) {
	// arrange
	store := memengine.NewEventStore()
	givenAppended(t, store, "ShelfAdded", `{"Subject": "sci-fi"}`)
	givenAppended(t, store, "ReaderRegistered", `{"CardNumber": 1}`)

	// act
	events, maxSeq, err := store.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, uint(2), maxSeq)
}

func Test_EventStore_Query_Fails_WhenContextIsCanceled(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := memengine.NewEventStore()

	// act
	_, _, err := store.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	assert.ErrorIs(t, err, eventstore.ErrQueryingEventsFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_EventStore_Append_Fails_WithConcurrencyConflict(t *testing.T) {
	// arrange
	ctx := context.Background()
	spy := logspy.NewHandler()
	store := memengine.NewEventStore(memengine.WithLogger(spy.Logger()))
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("Subject", "sci-fi")).
		Finalize()

	_, staleMaxSeq, err := store.Query(ctx, filter)
	require.NoError(t, err)
	givenAppended(t, store, "ShelfAdded", `{"Subject": "sci-fi"}`)

	// act
	err = store.Append(ctx, filter, staleMaxSeq, givenStorableEvent(t, "BookCopyShelved", `{"Subject": "sci-fi"}`))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 1, store.Len())
	assert.True(t, spy.HasMessage("concurrency conflict detected"))
}

func Test_EventStore_Append_IgnoresEventsOutsideTheStream(t *testing.T) {
	// arrange
	ctx := context.Background()
	store := memengine.NewEventStore(memengine.WithCapacity(8))
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("Subject", "sci-fi")).
		Finalize()

	_, maxSeq, err := store.Query(ctx, filter)
	require.NoError(t, err)
	givenAppended(t, store, "ShelfAdded", `{"Subject": "education"}`)

	// act
	err = store.Append(
		ctx,
		filter,
		maxSeq,
		givenStorableEvent(t, "ShelfAdded", `{"Subject": "sci-fi"}`),
		givenStorableEvent(t, "BookCopyShelved", `{"Subject": "sci-fi"}`),
	)

	// assert
	require.NoError(t, err)
	events, newMaxSeq, err := store.Query(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, uint(3), newMaxSeq)
}

func givenStorableEvent(t *testing.T, eventType string, payload string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, time.Unix(0, 0).UTC(), []byte(payload))
	require.NoError(t, err)

	return event
}

func givenAppended(t *testing.T, store *memengine.EventStore, eventType string, payload string) {
	t.Helper()

	ctx := context.Background()
	filter := eventstore.BuildEventFilter().MatchingAnyEvent()

	_, maxSeq, err := store.Query(ctx, filter)
	require.NoError(t, err)

	err = store.Append(ctx, filter, maxSeq, givenStorableEvent(t, eventType, payload))
	require.NoError(t, err)
}
