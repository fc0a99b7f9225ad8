package board

import (
	"sync"

	"socketBoard/internal/enums"
	"socketBoard/internal/models"
)

// BoardSocketHub keeps the in-memory room table for the realtime surface.
// Membership is per connection, lives only as long as the connection, and is
// never shared across processes. All delivery happens under the hub mutex, so
// events from one sender reach a given recipient in the order they arrived.
type BoardSocketHub struct {
	mu sync.Mutex
	// [room name] => [connection id] => client
	rooms map[string]map[string]*models.SocketClient
	// [connection id] => set of joined rooms, for disconnect cleanup
	joined map[string]map[string]struct{}
}

func NewBoardSocketHub() *BoardSocketHub {
	return &BoardSocketHub{
		rooms:  make(map[string]map[string]*models.SocketClient),
		joined: make(map[string]map[string]struct{}),
	}
}

// Join adds the client to the room's membership set. Joining a room twice has
// no additional effect; a connection may belong to multiple rooms at once.
func (hub *BoardSocketHub) Join(client *models.SocketClient, room string) {
	if room == "" {
		return
	}
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if _, ok := hub.rooms[room]; !ok {
		hub.rooms[room] = make(map[string]*models.SocketClient)
	}
	hub.rooms[room][client.ID] = client

	if _, ok := hub.joined[client.ID]; !ok {
		hub.joined[client.ID] = make(map[string]struct{})
	}
	hub.joined[client.ID][room] = struct{}{}
}

// BroadcastDraw delivers the draw payload to every member of the room except
// the origin connection. An empty or solo room is a silent no-op.
func (hub *BoardSocketHub) BroadcastDraw(originID, room string, payload []byte) {
	event := models.SocketEvent{
		Event:   enums.SOCKET_EVENT_DRAW,
		Payload: payload,
	}
	hub.mu.Lock()
	defer hub.mu.Unlock()
	for id, client := range hub.rooms[room] {
		if id == originID {
			continue
		}
		hub.write(client, &event)
	}
}

// BroadcastClear delivers a payload-less clear event to every member of the
// room, the origin included, so the sender clears its own canvas too.
func (hub *BoardSocketHub) BroadcastClear(originID, room string) {
	event := models.SocketEvent{
		Event: enums.SOCKET_EVENT_CLEAR,
	}
	hub.mu.Lock()
	defer hub.mu.Unlock()
	for _, client := range hub.rooms[room] {
		hub.write(client, &event)
	}
}

// write sends under the hub lock; a failed write means the connection is gone,
// so it is closed and dropped from every room on the spot.
func (hub *BoardSocketHub) write(client *models.SocketClient, event *models.SocketEvent) {
	if err := client.Conn.WriteJSON(event); err != nil {
		_ = client.Conn.Close()
		hub.removeLocked(client.ID)
	}
}

// Leave removes the connection from every room it belongs to. Called on
// disconnect; no messages are held for a connection that left.
func (hub *BoardSocketHub) Leave(connID string) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.removeLocked(connID)
}

func (hub *BoardSocketHub) removeLocked(connID string) {
	for room := range hub.joined[connID] {
		delete(hub.rooms[room], connID)
		if len(hub.rooms[room]) == 0 {
			delete(hub.rooms, room)
		}
	}
	delete(hub.joined, connID)
}

// RoomSize reports the current number of connections in a room.
func (hub *BoardSocketHub) RoomSize(room string) int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.rooms[room])
}

// CloseAll closes every connection and empties the room table. Used on
// server shutdown.
func (hub *BoardSocketHub) CloseAll() {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	closed := make(map[string]struct{})
	for _, clients := range hub.rooms {
		for id, client := range clients {
			if _, ok := closed[id]; ok {
				continue
			}
			_ = client.Conn.Close()
			closed[id] = struct{}{}
		}
	}
	hub.rooms = make(map[string]map[string]*models.SocketClient)
	hub.joined = make(map[string]map[string]struct{})
}
