package models

import "encoding/json"

// SocketEvent is the envelope for every message on the realtime surface,
// in both directions. Payload stays raw; the server never interprets
// drawing geometry.
type SocketEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DrawPayload is the subset of a draw event the relay needs to route it.
type DrawPayload struct {
	Room string `json:"room"`
}
