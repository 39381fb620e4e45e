package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-ledger/eventstore"
)

//nolint:funlen
func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() eventstore.Filter
		validate func(t *testing.T, filter eventstore.Filter)
	}{
		{
			name: "matching_any_event_creates_empty_filter",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().MatchingAnyEvent()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Empty(t, f.Items())
				assert.True(t, f.IsEmpty())
			},
		},
		{
			name: "single_event_type",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookCopyLentToReader").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.False(t, f.IsEmpty())
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []string{"BookCopyLentToReader"}, f.Items()[0].EventTypes())
				assert.Empty(t, f.Items()[0].Predicates())
			},
		},
		{
			name: "event_types_are_sanitized",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("ShelfAdded", "", "BookCopyShelved", "ShelfAdded").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, []string{"BookCopyShelved", "ShelfAdded"}, f.Items()[0].EventTypes())
			},
		},
		{
			name: "event_types_and_any_predicate",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("BookCopyLentToReader", "BookCopyReturnedByReader").
					AndAnyPredicateOf(eventstore.P("ISBN", "42-w-87"), eventstore.P("CardNumber", "1")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				item := f.Items()[0]
				assert.Equal(t, []string{"BookCopyLentToReader", "BookCopyReturnedByReader"}, item.EventTypes())
				assert.Equal(t, []eventstore.FilterPredicate{
					eventstore.P("CardNumber", "1"),
					eventstore.P("ISBN", "42-w-87"),
				}, item.Predicates())
				assert.False(t, item.AllPredicatesMustMatch())
			},
		},
		{
			name: "all_predicates_then_event_type",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AllPredicatesOf(eventstore.P("ISBN", "42-w-87"), eventstore.P("CardNumber", "1")).
					AndAnyEventTypeOf("BookCopyLentToReader").
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				item := f.Items()[0]
				assert.True(t, item.AllPredicatesMustMatch())
				assert.Len(t, item.Predicates(), 2)
				assert.Equal(t, []string{"BookCopyLentToReader"}, item.EventTypes())
			},
		},
		{
			name: "partial_predicates_are_removed",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyPredicateOf(eventstore.P("", "x"), eventstore.P("Subject", ""), eventstore.P("Subject", "sci-fi")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Equal(t, []eventstore.FilterPredicate{eventstore.P("Subject", "sci-fi")}, f.Items()[0].Predicates())
			},
		},
		{
			name: "or_matching_creates_multiple_items",
			build: func() eventstore.Filter {
				return eventstore.BuildEventFilter().
					Matching().
					AnyEventTypeOf("ShelfAdded").
					AndAnyPredicateOf(eventstore.P("Subject", "sci-fi")).
					OrMatching().
					AnyEventTypeOf("BookCopyShelved").
					AndAnyPredicateOf(eventstore.P("Subject", "sci-fi")).
					Finalize()
			},
			validate: func(t *testing.T, f eventstore.Filter) {
				assert.Len(t, f.Items(), 2)
				assert.Equal(t, []string{"ShelfAdded"}, f.Items()[0].EventTypes())
				assert.Equal(t, []string{"BookCopyShelved"}, f.Items()[1].EventTypes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, tt.build())
		})
	}
}

func Test_FilterBuilder_DoesNotShareStateBetweenBranches(t *testing.T) {
	// arrange
	base := eventstore.BuildEventFilter().Matching().AnyEventTypeOf("ShelfAdded")

	// act
	first := base.AndAnyPredicateOf(eventstore.P("Subject", "sci-fi")).Finalize()
	second := base.AndAnyPredicateOf(eventstore.P("Subject", "education")).Finalize()

	// assert
	assert.Equal(t, "sci-fi", first.Items()[0].Predicates()[0].Val())
	assert.Equal(t, "education", second.Items()[0].Predicates()[0].Val())
}
