package enums

// Event names on the realtime surface. These are part of the wire protocol
// shared with the drawing UI and must not change.
const (
	SOCKET_EVENT_JOIN_ROOM = "joinRoom"
	SOCKET_EVENT_DRAW      = "draw"
	SOCKET_EVENT_CLEAR     = "clear"
)

const FILE_BUCKET_DRAWINGS = "drawings"
