package ws

// RoomManager is the slice of the room manager the hub needs to route
// client commands. Primitive arguments keep the hub free of room-package
// imports, which in turn lets the manager broadcast through the hub.
type RoomManager interface {
	Exists(roomCode string) bool
	Move(roomCode, playerID string, fromRow, fromCol, toRow, toCol int) error
	Rotate(roomCode, playerID string, row, col int, clockwise bool) error
	EndTurn(roomCode, playerID string) error
}
