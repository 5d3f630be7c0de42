package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages exchanged with the board view
type MessageType string

const (
	// inbound
	MessageTypeSelect MessageType = "select"
	MessageTypeClick  MessageType = "click"
	MessageTypeMove   MessageType = "move"
	MessageTypeReset  MessageType = "reset"

	// outbound
	MessageTypeBoardState MessageType = "boardState"
	MessageTypeMoveResult MessageType = "moveResult"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SquarePayload carries a single algebraic square, e.g. {"square": "e2"}.
type SquarePayload struct {
	Square string `json:"square"`
}

// MovePayload carries a move between two algebraic squares.
type MovePayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ErrorPayload is sent back when an inbound message fails.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage marshals payload into a Message of the given type.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}
