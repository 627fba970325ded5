package game

// Player holds a seat's display identity and capture bookkeeping. Name
// and Color are presentation attributes looked up through the seat; AI is
// stored but drives no engine behavior.
type Player struct {
	Name  string
	Color string
	AI    bool

	captured []*Piece
}

var defaultPlayers = [seatCount]Player{
	SeatBottom: {Name: "Player 1", Color: "#32CD32"},
	SeatRight:  {Name: "Player 4", Color: "#DC143C"},
	SeatTop:    {Name: "Player 2", Color: "#FFA500"},
	SeatLeft:   {Name: "Player 3", Color: "#4169E1"},
}

// Game is the rule engine: the board plus the seats and the turn state
// machine around it. Methods are not safe for concurrent use; the host
// must serialize calls per instance.
type Game struct {
	board       Board
	mode        Mode
	rule        Rule
	turn        Seat
	lastAction  Action
	bottomOnTop bool
	players     [seatCount]*Player
	listener    Listener
}

// New creates a game in the given mode with the given turn-action rule
// and places the starting formations.
func New(mode Mode, rule Rule) *Game {
	g := &Game{mode: mode, rule: rule}
	for s := range g.players {
		p := defaultPlayers[s]
		g.players[s] = &p
	}
	g.Init()
	return g
}

// Init recreates the board: the grid is cleared, every capture list is
// emptied, the bottom seat becomes active with no action taken, and every
// participating seat's formation is placed. Seats keep their display
// identity across re-initialization.
func (g *Game) Init() {
	g.board.clear()
	for _, p := range g.players {
		p.captured = nil
	}
	g.turn = SeatBottom
	g.lastAction = ActionNone
	for _, s := range g.mode.Seats() {
		g.placeFormation(s)
	}
}

// forward is the seat's effective facing: its canonical direction,
// reversed while the board orientation is flipped.
func (g *Game) forward(s Seat) Direction {
	if g.bottomOnTop {
		return s.Forward().Opposite()
	}
	return s.Forward()
}

// homeCell maps a seat's home-line index to grid coordinates. The home
// line is a row for bottom/top and a column for left/right; advance
// counts steps from it toward the board interior along the seat's
// effective facing.
func (g *Game) homeCell(s Seat, idx, advance int) (row, col int) {
	dr, dc := g.forward(s).Vector()
	switch s {
	case SeatBottom, SeatTop:
		base := 0
		if dr < 0 {
			base = Size - 1
		}
		return base + advance*dr, idx
	default:
		base := 0
		if dc < 0 {
			base = Size - 1
		}
		return idx, base + advance*dc
	}
}

// placeFormation fills one seat's starting pieces. Bottom and top play
// the full ten-piece formation; left and right play a trimmed eight-piece
// formation that leaves the corner cells to the bottom/top Lances, so all
// four formations fit without conflicts.
func (g *Game) placeFormation(s Seat) {
	f := g.forward(s)
	put := func(t PieceType, idx, advance int) {
		row, col := g.homeCell(s, idx, advance)
		g.board.place(row, col, &Piece{Type: t, Owner: s, Facing: f})
		g.emit(Event{
			Kind:   EventPiecePlaced,
			Seat:   s.String(),
			Piece:  t.String(),
			At:     &Coord{Row: row, Col: col},
			Facing: f.String(),
		})
	}
	put(Commander, 4, 0)
	switch s {
	case SeatBottom, SeatTop:
		for _, i := range []int{0, 8} {
			put(Lance, i, 0)
		}
		for _, i := range []int{1, 3, 5, 7} {
			put(Probe, i, 0)
		}
	default:
		for _, i := range []int{1, 7} {
			put(Lance, i, 0)
		}
		for _, i := range []int{3, 5} {
			put(Probe, i, 0)
		}
	}
	for _, i := range []int{2, 4, 6} {
		put(Shield, i, 1)
	}
}

// CurrentSeat returns the active seat.
func (g *Game) CurrentSeat() Seat { return g.turn }

// LastAction returns what the active seat has done so far this turn.
func (g *Game) LastAction() Action { return g.lastAction }

func (g *Game) Mode() Mode { return g.mode }

func (g *Game) Rule() Rule { return g.rule }

// BottomOnTop reports whether the board orientation is flipped, i.e. the
// bottom seat's home side is the physical top.
func (g *Game) BottomOnTop() bool { return g.bottomOnTop }

// EndTurn hands the turn to the next seat and clears the action memory.
// Two-seat games alternate bottom and top; four-seat games cycle
// bottom, right, top, left.
func (g *Game) EndTurn() {
	if g.mode == ModeTwoSeat {
		if g.turn == SeatBottom {
			g.turn = SeatTop
		} else {
			g.turn = SeatBottom
		}
	} else {
		g.turn = (g.turn + 1) % seatCount
	}
	g.lastAction = ActionNone
	g.emit(Event{Kind: EventTurnChanged, Seat: g.turn.String()})
}

// FlipOrientation toggles which physical side is home for the bottom
// seat. Every occupied cell is point-reflected through the board center
// and every facing is replaced by its opposite; ownership and capture
// lists are untouched. Applying it twice restores the exact position.
func (g *Game) FlipOrientation() {
	g.bottomOnTop = !g.bottomOnTop
	var flipped [Size][Size]*Piece
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pc := g.board.cells[r][c]
			if pc == nil {
				continue
			}
			pc.Facing = pc.Facing.Opposite()
			flipped[Size-1-r][Size-1-c] = pc
		}
	}
	g.board.cells = flipped
	g.emit(Event{Kind: EventBoardFlipped})
}

// seatActive reports whether the seat participates in this game's mode.
func (g *Game) seatActive(s Seat) bool {
	for _, a := range g.mode.Seats() {
		if a == s {
			return true
		}
	}
	return false
}

// ConfigureSeat updates a seat's display identity. Empty name or color
// keep the current value. False when the seat does not participate in
// this game's mode.
func (g *Game) ConfigureSeat(s Seat, name, color string, ai bool) bool {
	if !g.seatActive(s) {
		return false
	}
	p := g.players[s]
	if name != "" {
		p.Name = name
	}
	if color != "" {
		p.Color = color
	}
	p.AI = ai
	return true
}

// SeatInfo returns the seat's display identity.
func (g *Game) SeatInfo(s Seat) (Player, bool) {
	if !g.seatActive(s) {
		return Player{}, false
	}
	return *g.players[s], true
}

// Captured returns copies of the pieces the seat has taken, in capture
// order.
func (g *Game) Captured(s Seat) []Piece {
	if !s.Valid() {
		return nil
	}
	out := make([]Piece, 0, len(g.players[s].captured))
	for _, pc := range g.players[s].captured {
		out = append(out, *pc)
	}
	return out
}

// PieceState is the serializable form of one piece.
type PieceState struct {
	Type   string `json:"type"`
	Owner  string `json:"owner"`
	Facing string `json:"facing"`
}

// SeatState is the serializable form of one seat.
type SeatState struct {
	Name     string       `json:"name"`
	Color    string       `json:"color"`
	AI       bool         `json:"ai"`
	Captured []PieceState `json:"captured"`
}

// BoardState is a full snapshot of the observable game state, safe to
// serialize and detached from the live board.
type BoardState struct {
	Grid        [Size][Size]*PieceState `json:"grid"`
	Turn        string                  `json:"turn"`
	LastAction  string                  `json:"lastAction"`
	Mode        string                  `json:"mode"`
	Rule        string                  `json:"rule"`
	BottomOnTop bool                    `json:"bottomOnTop"`
	Seats       map[string]SeatState    `json:"seats"`
	Over        bool                    `json:"over"`
	Winner      string                  `json:"winner,omitempty"`
}

func pieceState(pc *Piece) *PieceState {
	return &PieceState{
		Type:   pc.Type.String(),
		Owner:  pc.Owner.String(),
		Facing: pc.Facing.String(),
	}
}

// Snapshot exports the current state.
func (g *Game) Snapshot() BoardState {
	st := BoardState{
		Turn:        g.turn.String(),
		LastAction:  g.lastAction.String(),
		Mode:        g.mode.String(),
		Rule:        g.rule.String(),
		BottomOnTop: g.bottomOnTop,
		Seats:       make(map[string]SeatState, g.mode.NumSeats()),
		Over:        g.Over(),
	}
	if w := g.Winner(); w != SeatNone {
		st.Winner = w.String()
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if pc := g.board.cells[r][c]; pc != nil {
				st.Grid[r][c] = pieceState(pc)
			}
		}
	}
	for _, s := range g.mode.Seats() {
		p := g.players[s]
		ss := SeatState{
			Name:     p.Name,
			Color:    p.Color,
			AI:       p.AI,
			Captured: make([]PieceState, 0, len(p.captured)),
		}
		for _, pc := range p.captured {
			ss.Captured = append(ss.Captured, *pieceState(pc))
		}
		st.Seats[s.String()] = ss
	}
	return st
}
