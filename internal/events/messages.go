package events

import (
	"encoding/json"
	"time"
)

// Actions carried by change messages.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeMessage announces that one entity in a collection changed.
// Consumers fetch current state themselves; the message carries only
// the coordinates.
type ChangeMessage struct {
	Collection string    `json:"collection"`
	EntityID   string    `json:"entityId"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewChangeMessage(collection, entityID, action string) *ChangeMessage {
	return &ChangeMessage{
		Collection: collection,
		EntityID:   entityID,
		Action:     action,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON creates a message from JSON bytes.
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
