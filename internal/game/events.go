package game

import "github.com/rs/zerolog"

// EventKind tags an engine notification.
type EventKind uint8

const (
	EventPiecePlaced EventKind = iota
	EventPieceSelected
	EventPieceMoved
	EventPieceRotated
	EventPieceCaptured
	EventTurnChanged
	EventBoardFlipped
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventPiecePlaced:
		return "piece_placed"
	case EventPieceSelected:
		return "piece_selected"
	case EventPieceMoved:
		return "piece_moved"
	case EventPieceRotated:
		return "piece_rotated"
	case EventPieceCaptured:
		return "piece_captured"
	case EventTurnChanged:
		return "turn_changed"
	case EventBoardFlipped:
		return "board_flipped"
	case EventGameOver:
		return "game_over"
	default:
		return "?"
	}
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Event describes one engine notification. Fields not relevant to the
// kind are left empty. Events are observational only: they carry copies,
// never live board state.
type Event struct {
	Kind   EventKind `json:"kind"`
	Seat   string    `json:"seat,omitempty"`
	Piece  string    `json:"piece,omitempty"`
	From   *Coord    `json:"from,omitempty"`
	At     *Coord    `json:"at,omitempty"`
	Facing string    `json:"facing,omitempty"`
	Taken  string    `json:"taken,omitempty"`
	Owner  string    `json:"owner,omitempty"`
}

// Listener receives engine events. A listener must not call back into the
// engine; notifications never influence engine state.
type Listener func(Event)

// SetListener installs the event listener; nil disables notifications.
func (g *Game) SetListener(l Listener) { g.listener = l }

func (g *Game) emit(ev Event) {
	if g.listener != nil {
		g.listener(ev)
	}
}

// LogListener returns a Listener that writes every event to the given
// logger at debug level.
func LogListener(logger zerolog.Logger) Listener {
	return func(ev Event) {
		logger.Debug().Str("kind", ev.Kind.String()).Interface("event", ev).Msg("game event")
	}
}
