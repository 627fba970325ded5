package room

import (
	"sync"
	"time"

	"ploy/internal/game"
)

// Room lifecycle: waiting until every seat is taken, active while the
// game runs, finished once a Commander falls.
const (
	StatusWaiting  = "waiting"
	StatusActive   = "active"
	StatusFinished = "finished"
)

// Player binds a connected client to a seat.
type Player struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Seat game.Seat `json:"seat"`
}

// Room is one hosted game. The engine is not safe for concurrent use, so
// every access to Game goes through the manager, which holds mu for the
// duration of the call.
type Room struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Mode      game.Mode  `json:"mode"`
	Rule      game.Rule  `json:"rule"`
	Players   []Player   `json:"players"`
	Status    string     `json:"status"`
	WinnerID  *string    `json:"winnerId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	Game      *game.Game `json:"-"`

	mu sync.Mutex
}

// RoomState is the wire form of a room: seating metadata plus the engine
// snapshot. It is detached from the live room and safe to serialize
// after the lock is released.
type RoomState struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Mode      game.Mode       `json:"mode"`
	Rule      game.Rule       `json:"rule"`
	Players   []Player        `json:"players"`
	Status    string          `json:"status"`
	WinnerID  *string         `json:"winnerId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	Game      game.BoardState `json:"game"`
}

// Store persists rooms by code.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}

// state builds the wire form. Caller holds r.mu.
func (r *Room) state() RoomState {
	players := make([]Player, len(r.Players))
	copy(players, r.Players)
	return RoomState{
		ID:        r.ID,
		Code:      r.Code,
		Mode:      r.Mode,
		Rule:      r.Rule,
		Players:   players,
		Status:    r.Status,
		WinnerID:  r.WinnerID,
		CreatedAt: r.CreatedAt,
		Game:      r.Game.Snapshot(),
	}
}

func (r *Room) full() bool {
	return len(r.Players) >= r.Mode.NumSeats()
}

func (r *Room) playerByID(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) playerBySeat(s game.Seat) *Player {
	for i := range r.Players {
		if r.Players[i].Seat == s {
			return &r.Players[i]
		}
	}
	return nil
}

// actingPlayer resolves a mutating command's sender. Caller holds r.mu.
func (r *Room) actingPlayer(playerID string) (*Player, error) {
	switch r.Status {
	case StatusWaiting:
		return nil, ErrNotStarted
	case StatusFinished:
		return nil, ErrFinished
	}
	p := r.playerByID(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	return p, nil
}
