package queue

import "encoding/json"

// Message describes a blob left behind by a failed compensating delete.
// An external cleanup job consumes these and removes the orphaned objects.
type Message struct {
	PhotoID    string `json:"photoId"`
	StorageKey string `json:"storageKey"`
	Reason     string `json:"reason"`
	OccurredAt string `json:"occurredAt"`
	Version    int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
