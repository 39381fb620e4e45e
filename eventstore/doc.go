// Package eventstore provides the abstractions of the library ledger's journal:
// every change applied to the in-memory library is recorded as an event and can be read back.
//
// The journal supports dynamic filtering of events based on:
//   - Event types
//   - JSON payload predicates
//
// Key types:
//   - Filter: Defines criteria for querying events
//   - StorableEvent: Represents an event that can be stored and retrieved
//   - StorableEvents: Collection of storable events
//
// Common usage pattern:
//
//	filter := BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.BookCopyLentToReaderEventType,
//			core.BookCopyReturnedByReaderEventType).
//		AndAnyPredicateOf(P("ISBN", "42-w-87")).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	newEvent, _ := eventstore.BuildStorableEvent(eventType, time.Now(), payload, metadata)
//	err = store.Append(ctx, filter, maxSeq, newEvent)
package eventstore
