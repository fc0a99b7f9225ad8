package models

import "github.com/gorilla/websocket"

// SocketClient is one live realtime connection. ID is assigned per connection
// (not per user); the realtime surface does not require authentication.
type SocketClient struct {
	ID   string
	Conn *websocket.Conn
}
