package amqp

import (
	"encoding/json"
	"time"

	"finconnect/internal/core"
)

// Message types carried on the sync queue. The server and the worker run as
// separate processes, so sync messages carry the full entry payload instead
// of a reference the worker could not resolve.
const (
	TypeEntrySync   = "entry_sync"
	TypeEntryDelete = "entry_delete"
)

// EntrySyncMessage asks the worker to mirror a spending entry to the
// configured spreadsheet.
type EntrySyncMessage struct {
	Type      string             `json:"type"`
	Entry     core.SpendingEntry `json:"entry"`
	Timestamp time.Time          `json:"timestamp"`
}

// EntryDeleteMessage tells the worker an entry was removed so its export
// record can be marked stale.
type EntryDeleteMessage struct {
	Type      string    `json:"type"`
	EntryID   string    `json:"entry_id"`
	ProjectID string    `json:"project_id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntrySyncMessage creates a sync message for the given entry
func NewEntrySyncMessage(entry core.SpendingEntry) *EntrySyncMessage {
	return &EntrySyncMessage{
		Type:      TypeEntrySync,
		Entry:     entry,
		Timestamp: time.Now(),
	}
}

// NewEntryDeleteMessage creates a delete message for the given entry
func NewEntryDeleteMessage(entryID, projectID string) *EntryDeleteMessage {
	return &EntryDeleteMessage{
		Type:      TypeEntryDelete,
		EntryID:   entryID,
		ProjectID: projectID,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *EntrySyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ToJSON converts the message to JSON bytes
func (m *EntryDeleteMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EntrySyncMessageFromJSON creates a sync message from JSON bytes
func EntrySyncMessageFromJSON(data []byte) (*EntrySyncMessage, error) {
	var msg EntrySyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// EntryDeleteMessageFromJSON creates a delete message from JSON bytes
func EntryDeleteMessageFromJSON(data []byte) (*EntryDeleteMessage, error) {
	var msg EntryDeleteMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// messageType peeks at the type discriminator without decoding the payload.
func messageType(data []byte) (string, error) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return "", err
	}
	return env.Type, nil
}
