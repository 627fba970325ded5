package game

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func recordEvents(g *Game) *[]Event {
	var got []Event
	g.SetListener(func(ev Event) { got = append(got, ev) })
	return &got
}

func TestListenerReceivesLifecycleEvents(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	got := recordEvents(g)

	require.True(t, g.Move(0, 1, 2, 1))
	require.True(t, g.Rotate(1, 2, true))
	g.EndTurn()
	g.FlipOrientation()

	var kinds []EventKind
	for _, ev := range *got {
		kinds = append(kinds, ev.Kind)
	}
	require.Equal(t, []EventKind{EventPieceMoved, EventPieceRotated, EventTurnChanged, EventBoardFlipped}, kinds)
}

func TestCaptureEventPrecedesMoveAndGameOver(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	g.board.clear()
	put(g, 4, 4, Probe, SeatBottom, DirS)
	put(g, 5, 4, Commander, SeatTop, DirN)
	got := recordEvents(g)

	require.True(t, g.Move(4, 4, 5, 4))

	require.Len(t, *got, 3)
	require.Equal(t, EventPieceCaptured, (*got)[0].Kind)
	require.Equal(t, "Commander", (*got)[0].Taken)
	require.Equal(t, "top", (*got)[0].Owner)
	require.Equal(t, EventPieceMoved, (*got)[1].Kind)
	require.Equal(t, &Coord{Row: 4, Col: 4}, (*got)[1].From)
	require.Equal(t, &Coord{Row: 5, Col: 4}, (*got)[1].At)
	require.Equal(t, EventGameOver, (*got)[2].Kind)
	require.Equal(t, "bottom", (*got)[2].Seat)
}

func TestSelectionEventFiresForOwnPiecesOnly(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	got := recordEvents(g)

	g.ValidMoves(0, 0)
	require.Len(t, *got, 1)
	require.Equal(t, EventPieceSelected, (*got)[0].Kind)
	require.Equal(t, "Lance", (*got)[0].Piece)
	require.Equal(t, "bottom", (*got)[0].Seat)

	g.ValidMoves(8, 0)
	require.Len(t, *got, 1, "a waiting seat's piece should not notify")
}

func TestInitEmitsPlacementEvents(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	got := recordEvents(g)

	g.Init()

	require.Len(t, *got, 20)
	for _, ev := range *got {
		require.Equal(t, EventPiecePlaced, ev.Kind)
	}
}

func TestRotationEventCarriesNewFacing(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	got := recordEvents(g)

	require.True(t, g.Rotate(0, 1, true))

	require.Len(t, *got, 1)
	require.Equal(t, EventPieceRotated, (*got)[0].Kind)
	require.Equal(t, "SW", (*got)[0].Facing)
}

func TestLogListenerWritesEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	g := New(ModeTwoSeat, RuleShieldPivot)
	g.SetListener(LogListener(logger))
	g.EndTurn()

	require.Contains(t, buf.String(), "turn_changed")
	require.Contains(t, buf.String(), "game event")
}
