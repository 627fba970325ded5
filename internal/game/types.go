package game

import "fmt"

// Size is the board edge length; the grid is Size by Size vertices.
const Size = 9

// Seat identifies a player slot. Declaration order is the four-seat
// turn order.
type Seat uint8

const (
	SeatBottom Seat = iota
	SeatRight
	SeatTop
	SeatLeft

	SeatNone Seat = 255
)

const seatCount = 4

func (s Seat) Valid() bool { return s < seatCount }

func (s Seat) String() string {
	switch s {
	case SeatBottom:
		return "bottom"
	case SeatRight:
		return "right"
	case SeatTop:
		return "top"
	case SeatLeft:
		return "left"
	default:
		return "?"
	}
}

func ParseSeat(v string) (Seat, bool) {
	switch v {
	case "bottom":
		return SeatBottom, true
	case "right":
		return SeatRight, true
	case "top":
		return SeatTop, true
	case "left":
		return SeatLeft, true
	default:
		return SeatNone, false
	}
}

// Forward is the seat's canonical facing, pointing from its home side
// into the board.
func (s Seat) Forward() Direction {
	switch s {
	case SeatBottom:
		return DirS
	case SeatRight:
		return DirW
	case SeatTop:
		return DirN
	case SeatLeft:
		return DirE
	default:
		return DirNone
	}
}

func (s Seat) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Seat) UnmarshalText(text []byte) error {
	parsed, ok := ParseSeat(string(text))
	if !ok {
		return fmt.Errorf("invalid seat %q", string(text))
	}
	*s = parsed
	return nil
}

type PieceType uint8

const (
	Commander PieceType = iota
	Lance
	Probe
	Shield
)

// Reach is the maximum number of steps the type may travel in one move.
func (t PieceType) Reach() int {
	switch t {
	case Lance:
		return 3
	case Probe:
		return 2
	default:
		return 1
	}
}

func (t PieceType) String() string {
	switch t {
	case Commander:
		return "Commander"
	case Lance:
		return "Lance"
	case Probe:
		return "Probe"
	case Shield:
		return "Shield"
	default:
		return fmt.Sprintf("piece(%d)", t)
	}
}

func ParsePieceType(v string) (PieceType, bool) {
	switch v {
	case "Commander":
		return Commander, true
	case "Lance":
		return Lance, true
	case "Probe":
		return Probe, true
	case "Shield":
		return Shield, true
	default:
		return 0, false
	}
}

func (t PieceType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *PieceType) UnmarshalText(text []byte) error {
	parsed, ok := ParsePieceType(string(text))
	if !ok {
		return fmt.Errorf("invalid piece type %q", string(text))
	}
	*t = parsed
	return nil
}

// Direction is one of the eight compass points. Declaration order is the
// clockwise rotation order, so stepping +1 or -1 modulo 8 rotates a facing.
type Direction uint8

const (
	DirN Direction = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW

	DirNone Direction = 255
)

const dirCount = 8

// vectors maps each direction to its (dr, dc) unit step. Row 0 is the
// north edge, so N decreases the row.
var vectors = [dirCount][2]int{
	DirN:  {-1, 0},
	DirNE: {-1, 1},
	DirE:  {0, 1},
	DirSE: {1, 1},
	DirS:  {1, 0},
	DirSW: {1, -1},
	DirW:  {0, -1},
	DirNW: {-1, -1},
}

func (d Direction) Valid() bool { return d < dirCount }

// Vector returns the (dr, dc) unit step for d.
func (d Direction) Vector() (dr, dc int) {
	if !d.Valid() {
		return 0, 0
	}
	return vectors[d][0], vectors[d][1]
}

// Rotated returns the neighboring compass point, one step clockwise or
// counterclockwise.
func (d Direction) Rotated(clockwise bool) Direction {
	if !d.Valid() {
		return DirNone
	}
	if clockwise {
		return (d + 1) % dirCount
	}
	return (d + dirCount - 1) % dirCount
}

// Opposite returns the reverse direction: S for N, SW for NE, and so on.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return DirNone
	}
	return (d + dirCount/2) % dirCount
}

// Cardinal reports whether d is one of N, E, S, W.
func (d Direction) Cardinal() bool { return d.Valid() && d%2 == 0 }

func (d Direction) String() string {
	switch d {
	case DirN:
		return "N"
	case DirNE:
		return "NE"
	case DirE:
		return "E"
	case DirSE:
		return "SE"
	case DirS:
		return "S"
	case DirSW:
		return "SW"
	case DirW:
		return "W"
	case DirNW:
		return "NW"
	default:
		return "?"
	}
}

func ParseDirection(v string) (Direction, bool) {
	switch v {
	case "N":
		return DirN, true
	case "NE":
		return DirNE, true
	case "E":
		return DirE, true
	case "SE":
		return DirSE, true
	case "S":
		return DirS, true
	case "SW":
		return DirSW, true
	case "W":
		return DirW, true
	case "NW":
		return DirNW, true
	default:
		return DirNone, false
	}
}

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("invalid direction %q", string(text))
	}
	*d = parsed
	return nil
}

// Action records what the active seat has already done this turn.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoved
	ActionRotated
)

func (a Action) String() string {
	switch a {
	case ActionMoved:
		return "moved"
	case ActionRotated:
		return "rotated"
	default:
		return "none"
	}
}

// Mode selects how many seats take part.
type Mode uint8

const (
	ModeTwoSeat Mode = iota
	ModeFourSeat
)

var twoSeats = []Seat{SeatBottom, SeatTop}
var fourSeats = []Seat{SeatBottom, SeatRight, SeatTop, SeatLeft}

// Seats returns the participating seats in turn order.
func (m Mode) Seats() []Seat {
	if m == ModeFourSeat {
		return fourSeats
	}
	return twoSeats
}

// NumSeats is the number of participating seats.
func (m Mode) NumSeats() int { return len(m.Seats()) }

func (m Mode) String() string {
	if m == ModeFourSeat {
		return "4-seat"
	}
	return "2-seat"
}

// ModeForPlayers maps a requested player count to a mode.
func ModeForPlayers(n int) (Mode, bool) {
	switch n {
	case 2:
		return ModeTwoSeat, true
	case 4:
		return ModeFourSeat, true
	default:
		return ModeTwoSeat, false
	}
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "2-seat":
		*m = ModeTwoSeat
	case "4-seat":
		*m = ModeFourSeat
	default:
		return fmt.Errorf("invalid mode %q", string(text))
	}
	return nil
}

// Rule selects the turn-action variant: whether a seat may combine a move
// and a rotation in one turn.
type Rule uint8

const (
	// RuleShieldPivot forbids moving after a rotation and rotating after
	// a move, except for Shields, which may do both.
	RuleShieldPivot Rule = iota
	// RuleSingleAction allows exactly one action per turn for every
	// piece type.
	RuleSingleAction
)

func (r Rule) String() string {
	if r == RuleSingleAction {
		return "single-action"
	}
	return "shield-pivot"
}

// ParseRule maps a rule name to its value; the empty string selects the
// default shield-pivot rule.
func ParseRule(v string) (Rule, bool) {
	switch v {
	case "", "shield-pivot":
		return RuleShieldPivot, true
	case "single-action":
		return RuleSingleAction, true
	default:
		return RuleShieldPivot, false
	}
}

func (r Rule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Rule) UnmarshalText(text []byte) error {
	parsed, ok := ParseRule(string(text))
	if !ok {
		return fmt.Errorf("invalid rule %q", string(text))
	}
	*r = parsed
	return nil
}

// Piece is a single piece on the board. Its position is implicit: the
// grid cell holding it is its position. Type and Owner never change;
// Facing changes through rotation and board reorientation.
type Piece struct {
	Type   PieceType
	Owner  Seat
	Facing Direction
}

// Coord addresses one grid cell.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
