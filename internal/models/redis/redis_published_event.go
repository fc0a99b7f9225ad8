package models

import "encoding/json"

const REDIS_CHANNEL_BOARD = "board_events"

// RelayedBoardEvent is what travels over the board redis channel between the
// socket read loops and the fan-out subscriber. Origin carries the sending
// connection id so draw events are never echoed back.
type RelayedBoardEvent struct {
	Event   string          `json:"event"`
	Room    string          `json:"room"`
	Origin  string          `json:"origin"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
