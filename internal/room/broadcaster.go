package room

// Broadcaster fans a message out to everyone subscribed to a room. The
// websocket hub implements it; the indirection keeps this package free
// of transport imports.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}
