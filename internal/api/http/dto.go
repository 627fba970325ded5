package http

// CreateRoomRequest represents the payload for /create-room. Players
// defaults to the server-wide setting when omitted; rule defaults to
// shield-pivot.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName" binding:"required"`
	Players    int    `json:"players"`
	Rule       string `json:"rule"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode" binding:"required"`
	PlayerName string `json:"playerName" binding:"required"`
}

// MoveRequest represents a piece move between two cells.
type MoveRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
	FromRow  int    `json:"fromRow"`
	FromCol  int    `json:"fromCol"`
	ToRow    int    `json:"toRow"`
	ToCol    int    `json:"toCol"`
}

// RotateRequest represents a one-step piece rotation.
type RotateRequest struct {
	RoomCode  string `json:"roomCode" binding:"required"`
	PlayerID  string `json:"playerId" binding:"required"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Clockwise bool   `json:"clockwise"`
}

// TurnRequest addresses a room-level command that needs no coordinates:
// ending the turn, flipping the board, restarting the game.
type TurnRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
}

// ConfigurePlayerRequest updates the sender's seat identity. Empty name
// or color keep the current values.
type ConfigurePlayerRequest struct {
	RoomCode string `json:"roomCode" binding:"required"`
	PlayerID string `json:"playerId" binding:"required"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	AI       bool   `json:"ai"`
}
