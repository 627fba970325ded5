package shared

import "encoding/json"

// WebSocket actions. Server-to-client frames carry ActionState after
// every accepted command and ActionEvent for each engine notification;
// the remaining actions are client commands.
const (
	ActionState   = "state"
	ActionEvent   = "event"
	ActionMove    = "move"
	ActionRotate  = "rotate"
	ActionEndTurn = "end_turn"
)

// Message is the frame envelope in both directions.
type Message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// MoveCommand asks to move a piece between two cells.
type MoveCommand struct {
	PlayerID string `json:"playerId"`
	FromRow  int    `json:"fromRow"`
	FromCol  int    `json:"fromCol"`
	ToRow    int    `json:"toRow"`
	ToCol    int    `json:"toCol"`
}

// RotateCommand asks to turn a piece one compass step.
type RotateCommand struct {
	PlayerID  string `json:"playerId"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Clockwise bool   `json:"clockwise"`
}

// EndTurnCommand hands the turn to the next seat.
type EndTurnCommand struct {
	PlayerID string `json:"playerId"`
}
