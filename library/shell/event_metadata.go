package shell

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-ledger/eventstore"
)

// ErrDecodingMetadataFailed is returned when the metadata of a journal entry can't be read.
var ErrDecodingMetadataFailed = errors.New("decoding event metadata failed")

type MessageID = string
type CausationID = string
type CorrelationID = string

// EventMetadata places a journal entry in its session.
//
// CorrelationID names the Journal session, CausationID the entry recorded just before.
// The first entry of a session is caused by the session itself, so its CausationID equals its CorrelationID.
type EventMetadata struct {
	MessageID     MessageID     `json:"messageId"`
	CausationID   CausationID   `json:"causationId"`
	CorrelationID CorrelationID `json:"correlationId"`
}

func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// OpensSession reports whether the entry was the first one its session recorded.
func (m EventMetadata) OpensSession() bool {
	return m.CausationID != "" && m.CausationID == m.CorrelationID
}

// Follows reports whether the entry was recorded directly after previous in the same session.
func (m EventMetadata) Follows(previous EventMetadata) bool {
	return m.CorrelationID == previous.CorrelationID && m.CausationID == previous.MessageID
}

// EventMetadataFrom reads the metadata of a journal entry. Entries stored without metadata yield the zero value.
func EventMetadataFrom(storableEvent eventstore.StorableEvent) (EventMetadata, error) {
	var metadata EventMetadata

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, &metadata); err != nil {
		return EventMetadata{}, errors.Join(ErrDecodingMetadataFailed, err)
	}

	return metadata, nil
}
