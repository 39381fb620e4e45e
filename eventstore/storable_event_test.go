package eventstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-ledger/eventstore"
)

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validPayloadJSON := []byte(`{"ISBN": "42-w-87"}`)
	validMetadataJSON := []byte(`{"MessageID": "msg-1"}`)

	tests := []struct {
		name         string
		eventType    string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{name: "empty event type", eventType: "", payloadJSON: validPayloadJSON, metadataJSON: validMetadataJSON, expectedErr: eventstore.ErrEmptyEventType},
		{name: "invalid payload JSON", eventType: "ShelfAdded", payloadJSON: []byte(`{"invalid": json}`), metadataJSON: validMetadataJSON, expectedErr: eventstore.ErrInvalidPayloadJSON},
		{name: "nil payload JSON", eventType: "ShelfAdded", payloadJSON: nil, metadataJSON: validMetadataJSON, expectedErr: eventstore.ErrInvalidPayloadJSON},
		{name: "invalid metadata JSON", eventType: "ShelfAdded", payloadJSON: validPayloadJSON, metadataJSON: []byte(`{"invalid": json}`), expectedErr: eventstore.ErrInvalidMetadataJSON},
		{name: "empty metadata JSON", eventType: "ShelfAdded", payloadJSON: validPayloadJSON, metadataJSON: []byte(``), expectedErr: eventstore.ErrInvalidMetadataJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eventstore.BuildStorableEvent(tt.eventType, validTime, tt.payloadJSON, tt.metadataJSON)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BuildStorableEvent_Success(t *testing.T) {
	occurredAt := time.Date(2021, 11, 9, 10, 0, 0, 0, time.UTC)
	payloadJSON := []byte(`{"ISBN": "42-w-87", "CardNumber": "1"}`)
	metadataJSON := []byte(`{"CorrelationID": "corr-789"}`)

	storableEvent, err := eventstore.BuildStorableEvent("BookCopyLentToReader", occurredAt, payloadJSON, metadataJSON)

	assert.NoError(t, err)
	assert.Equal(t, "BookCopyLentToReader", storableEvent.EventType)
	assert.Equal(t, occurredAt, storableEvent.OccurredAt)
	assert.Equal(t, payloadJSON, storableEvent.PayloadJSON)
	assert.Equal(t, metadataJSON, storableEvent.MetadataJSON)
	assert.Zero(t, storableEvent.SequenceNumber)
}

func Test_BuildStorableEventWithEmptyMetadata_Success(t *testing.T) {
	storableEvent, err := eventstore.BuildStorableEventWithEmptyMetadata("ShelfAdded", time.Now(), []byte(`{"Subject": "sci-fi"}`))

	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), storableEvent.MetadataJSON)
}
