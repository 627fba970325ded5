package room

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ploy/internal/config"
	"ploy/internal/game"
	"ploy/internal/shared"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is full")
	ErrNotStarted      = errors.New("room is not active yet")
	ErrFinished        = errors.New("game is already decided")
	ErrUnknownPlayer   = errors.New("player is not seated in this room")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrIllegalMove     = errors.New("illegal move")
	ErrIllegalRotation = errors.New("illegal rotation")
	ErrPlayerCount     = errors.New("player count must be 2 or 4")
	ErrUnknownRule     = errors.New("unknown turn rule")
	ErrUnknownSeat     = errors.New("unknown seat")
)

// Manager owns every room and serializes access to the engines inside
// them. The broadcaster is wired after construction so the manager and
// the websocket hub can reference each other without an import cycle.
type Manager struct {
	store Store
	cfg   config.Config
	bc    Broadcaster
}

func NewManager(s Store, cfg config.Config) *Manager {
	return &Manager{store: s, cfg: cfg}
}

func (m *Manager) SetBroadcaster(bc Broadcaster) {
	m.bc = bc
}

// CreateRoom builds a fresh game and seats the creator at the first seat
// of the mode's turn order.
func (m *Manager) CreateRoom(creatorName string, players int, rule string) (*Room, error) {
	mode, ok := game.ModeForPlayers(players)
	if !ok {
		return nil, ErrPlayerCount
	}
	rl, ok := game.ParseRule(rule)
	if !ok {
		return nil, ErrUnknownRule
	}
	if creatorName == "" {
		creatorName = "Player"
	}

	code := randCode(m.cfg.RoomCodeLen)
	g := game.New(mode, rl)
	g.SetListener(m.eventListener(code))

	seat := mode.Seats()[0]
	r := &Room{
		ID:        uuid.NewString(),
		Code:      code,
		Mode:      mode,
		Rule:      rl,
		Status:    StatusWaiting,
		CreatedAt: time.Now(),
		Game:      g,
		Players: []Player{
			{ID: uuid.NewString(), Name: creatorName, Seat: seat},
		},
	}
	g.ConfigureSeat(seat, creatorName, "", false)

	m.store.SaveRoom(r)
	log.Info().Str("room", code).Str("player", r.Players[0].ID).
		Msgf("room created for %d players with %s rule", players, rl)
	return r, nil
}

// JoinRoom seats the next player. Seats are handed out in turn order;
// the room becomes active once the last seat is taken.
func (m *Manager) JoinRoom(code, name string) (*Room, *Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.full() {
		return nil, nil, ErrRoomFull
	}
	if name == "" {
		name = "Player"
	}
	seat := r.Mode.Seats()[len(r.Players)]
	r.Players = append(r.Players, Player{ID: uuid.NewString(), Name: name, Seat: seat})
	r.Game.ConfigureSeat(seat, name, "", false)
	if r.full() {
		r.Status = StatusActive
	}

	m.store.SaveRoom(r)
	m.broadcastState(r)
	p := &r.Players[len(r.Players)-1]
	log.Info().Str("room", code).Str("player", p.ID).Str("seat", seat.String()).Msg("player joined")
	return r, p, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) Exists(code string) bool {
	_, ok := m.store.GetRoom(code)
	return ok
}

// State returns the room's wire form.
func (m *Manager) State(code string) (RoomState, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return RoomState{}, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(), nil
}

// ValidMoves returns the legal destinations for the piece at row,col.
// Pieces of a waiting seat yield an empty set, mirroring the engine.
func (m *Manager) ValidMoves(code, playerID string, row, col int) ([]game.Coord, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.actingPlayer(playerID); err != nil {
		return nil, err
	}
	return r.Game.ValidMoves(row, col), nil
}

// Move executes a move command for the sending player's seat.
func (m *Manager) Move(code, playerID string, fromRow, fromCol, toRow, toCol int) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if p.Seat != r.Game.CurrentSeat() {
		return ErrNotYourTurn
	}
	if !r.Game.Move(fromRow, fromCol, toRow, toCol) {
		return ErrIllegalMove
	}
	m.settleOutcome(r)
	m.store.SaveRoom(r)
	m.broadcastState(r)
	return nil
}

// Rotate executes a rotation command for the sending player's seat.
func (m *Manager) Rotate(code, playerID string, row, col int, clockwise bool) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if p.Seat != r.Game.CurrentSeat() {
		return ErrNotYourTurn
	}
	if !r.Game.Rotate(row, col, clockwise) {
		return ErrIllegalRotation
	}
	m.store.SaveRoom(r)
	m.broadcastState(r)
	return nil
}

// EndTurn hands the turn to the next seat.
func (m *Manager) EndTurn(code, playerID string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.actingPlayer(playerID)
	if err != nil {
		return err
	}
	if p.Seat != r.Game.CurrentSeat() {
		return ErrNotYourTurn
	}
	r.Game.EndTurn()
	m.store.SaveRoom(r)
	m.broadcastState(r)
	return nil
}

// Flip reorients the board for every seat. Flipping is a presentation
// concern: it consumes no turn action and is allowed in any room state.
func (m *Manager) Flip(code, playerID string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.playerByID(playerID) == nil {
		return ErrUnknownPlayer
	}
	r.Game.FlipOrientation()
	m.store.SaveRoom(r)
	m.broadcastState(r)
	return nil
}

// Restart re-initializes the board of a full room. Seats, names, and
// colors survive; captures and the winner do not.
func (m *Manager) Restart(code, playerID string) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.playerByID(playerID) == nil {
		return ErrUnknownPlayer
	}
	if !r.full() {
		return ErrNotStarted
	}
	r.Game.Init()
	r.Status = StatusActive
	r.WinnerID = nil
	m.store.SaveRoom(r)
	m.broadcastState(r)
	log.Info().Str("room", code).Msg("game restarted")
	return nil
}

// ConfigurePlayer updates the sender's seat identity. Empty name or
// color keep the current values.
func (m *Manager) ConfigurePlayer(code, playerID, name, color string, ai bool) error {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerByID(playerID)
	if p == nil {
		return ErrUnknownPlayer
	}
	if !r.Game.ConfigureSeat(p.Seat, name, color, ai) {
		return ErrUnknownSeat
	}
	if name != "" {
		p.Name = name
	}
	m.store.SaveRoom(r)
	m.broadcastState(r)
	return nil
}

// Captured returns each seat's capture list, keyed by seat name.
func (m *Manager) Captured(code string) (map[string][]game.PieceState, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.Game.Snapshot()
	out := make(map[string][]game.PieceState, len(st.Seats))
	for seat, ss := range st.Seats {
		out[seat] = ss.Captured
	}
	return out, nil
}

// settleOutcome promotes an engine win into room bookkeeping. Caller
// holds r.mu.
func (m *Manager) settleOutcome(r *Room) {
	w := r.Game.Winner()
	if w == game.SeatNone {
		return
	}
	r.Status = StatusFinished
	if wp := r.playerBySeat(w); wp != nil {
		id := wp.ID
		r.WinnerID = &id
		log.Info().Str("room", r.Code).Str("player", id).Str("seat", w.String()).Msg("game decided")
	}
}

// broadcastState pushes the room's wire form to every subscriber.
// Caller holds r.mu.
func (m *Manager) broadcastState(r *Room) {
	if m.bc == nil {
		return
	}
	m.bc.Broadcast(r.Code, shared.ActionState, r.state())
}

// eventListener forwards engine events to the room's subscribers and the
// log. Engine methods are only called under the room lock, so the
// listener inherits that serialization.
func (m *Manager) eventListener(code string) game.Listener {
	logEvents := game.LogListener(log.With().Str("room", code).Logger())
	return func(ev game.Event) {
		logEvents(ev)
		if m.bc != nil {
			m.bc.Broadcast(code, shared.ActionEvent, ev)
		}
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
