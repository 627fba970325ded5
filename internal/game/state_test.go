package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwoSeatOpeningFormation(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)

	require.Equal(t, 20, g.board.count())

	checks := []struct {
		row, col int
		typ      PieceType
		owner    Seat
		facing   Direction
	}{
		{0, 4, Commander, SeatBottom, DirS},
		{0, 0, Lance, SeatBottom, DirS},
		{0, 8, Lance, SeatBottom, DirS},
		{0, 1, Probe, SeatBottom, DirS},
		{0, 3, Probe, SeatBottom, DirS},
		{0, 5, Probe, SeatBottom, DirS},
		{0, 7, Probe, SeatBottom, DirS},
		{1, 2, Shield, SeatBottom, DirS},
		{1, 4, Shield, SeatBottom, DirS},
		{1, 6, Shield, SeatBottom, DirS},
		{8, 4, Commander, SeatTop, DirN},
		{8, 0, Lance, SeatTop, DirN},
		{8, 8, Lance, SeatTop, DirN},
		{8, 1, Probe, SeatTop, DirN},
		{8, 3, Probe, SeatTop, DirN},
		{8, 5, Probe, SeatTop, DirN},
		{8, 7, Probe, SeatTop, DirN},
		{7, 2, Shield, SeatTop, DirN},
		{7, 4, Shield, SeatTop, DirN},
		{7, 6, Shield, SeatTop, DirN},
	}
	for _, c := range checks {
		pc := g.board.At(c.row, c.col)
		require.NotNil(t, pc, "piece expected at (%d,%d)", c.row, c.col)
		require.Equal(t, c.typ, pc.Type, "type at (%d,%d)", c.row, c.col)
		require.Equal(t, c.owner, pc.Owner, "owner at (%d,%d)", c.row, c.col)
		require.Equal(t, c.facing, pc.Facing, "facing at (%d,%d)", c.row, c.col)
	}

	require.Equal(t, SeatBottom, g.CurrentSeat())
	require.Equal(t, ActionNone, g.LastAction())
}

func TestFlippedInitializationSwapsHomeSides(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	g.FlipOrientation()
	g.Init()

	bottom := g.board.At(8, 4)
	require.NotNil(t, bottom)
	require.Equal(t, Commander, bottom.Type)
	require.Equal(t, SeatBottom, bottom.Owner)
	require.Equal(t, DirN, bottom.Facing, "a flipped bottom seat plays downward from the top side")

	top := g.board.At(0, 4)
	require.NotNil(t, top)
	require.Equal(t, SeatTop, top.Owner)
	require.Equal(t, DirS, top.Facing)

	shield := g.board.At(7, 4)
	require.NotNil(t, shield)
	require.Equal(t, Shield, shield.Type)
	require.Equal(t, SeatBottom, shield.Owner)
}

func TestFourSeatOpeningFormation(t *testing.T) {
	g := New(ModeFourSeat, RuleShieldPivot)

	require.Equal(t, 36, g.board.count(), "two full and two side formations")

	checks := []struct {
		row, col int
		typ      PieceType
		owner    Seat
		facing   Direction
	}{
		{0, 4, Commander, SeatBottom, DirS},
		{8, 4, Commander, SeatTop, DirN},
		{4, 0, Commander, SeatLeft, DirE},
		{4, 8, Commander, SeatRight, DirW},
		{1, 0, Lance, SeatLeft, DirE},
		{7, 0, Lance, SeatLeft, DirE},
		{3, 0, Probe, SeatLeft, DirE},
		{5, 0, Probe, SeatLeft, DirE},
		{2, 1, Shield, SeatLeft, DirE},
		{4, 1, Shield, SeatLeft, DirE},
		{6, 1, Shield, SeatLeft, DirE},
		{1, 8, Lance, SeatRight, DirW},
		{7, 8, Lance, SeatRight, DirW},
		{3, 8, Probe, SeatRight, DirW},
		{5, 8, Probe, SeatRight, DirW},
		{2, 7, Shield, SeatRight, DirW},
		{4, 7, Shield, SeatRight, DirW},
		{6, 7, Shield, SeatRight, DirW},
	}
	for _, c := range checks {
		pc := g.board.At(c.row, c.col)
		require.NotNil(t, pc, "piece expected at (%d,%d)", c.row, c.col)
		require.Equal(t, c.typ, pc.Type, "type at (%d,%d)", c.row, c.col)
		require.Equal(t, c.owner, pc.Owner, "owner at (%d,%d)", c.row, c.col)
		require.Equal(t, c.facing, pc.Facing, "facing at (%d,%d)", c.row, c.col)
	}

	corners := [][2]int{{0, 0}, {0, 8}, {8, 0}, {8, 8}}
	for _, c := range corners {
		pc := g.board.At(c[0], c[1])
		require.NotNil(t, pc, "corner (%d,%d)", c[0], c[1])
		require.Equal(t, Lance, pc.Type, "corners belong to the bottom/top lances")
	}
}

func TestEndTurnOrder(t *testing.T) {
	t.Run("two seats alternate", func(t *testing.T) {
		g := New(ModeTwoSeat, RuleShieldPivot)
		require.Equal(t, SeatBottom, g.CurrentSeat())
		g.EndTurn()
		require.Equal(t, SeatTop, g.CurrentSeat())
		g.EndTurn()
		require.Equal(t, SeatBottom, g.CurrentSeat())
	})

	t.Run("four seats cycle clockwise", func(t *testing.T) {
		g := New(ModeFourSeat, RuleShieldPivot)
		var order []Seat
		for i := 0; i < 5; i++ {
			order = append(order, g.CurrentSeat())
			g.EndTurn()
		}
		require.Equal(t, []Seat{SeatBottom, SeatRight, SeatTop, SeatLeft, SeatBottom}, order)
	})
}

func TestFlipOrientation(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	before := g.Snapshot()

	g.FlipOrientation()

	require.True(t, g.BottomOnTop())
	pc := g.board.At(8, 4)
	require.NotNil(t, pc)
	require.Equal(t, Commander, pc.Type)
	require.Equal(t, SeatBottom, pc.Owner)
	require.Equal(t, DirN, pc.Facing, "a flipped piece faces the opposite way")
	require.Equal(t, 20, g.board.count(), "flipping is a pure permutation")

	g.FlipOrientation()

	require.False(t, g.BottomOnTop())
	require.Equal(t, before, g.Snapshot(), "flipping twice should restore the exact position")
}

func TestFlipKeepsCapturesAndTurn(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	g.board.clear()
	put(g, 4, 4, Probe, SeatBottom, DirS)
	put(g, 5, 4, Probe, SeatTop, DirN)
	require.True(t, g.Move(4, 4, 5, 4))

	g.FlipOrientation()

	require.Len(t, g.Captured(SeatBottom), 1, "capture lists are untouched by a flip")
	require.Equal(t, SeatBottom, g.CurrentSeat())
	moved := g.board.At(3, 4)
	require.NotNil(t, moved, "occupied cells are point-reflected through the center")
	require.Equal(t, SeatBottom, moved.Owner)
}

func TestEachPieceOccupiesExactlyOneCell(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	require.True(t, g.Move(0, 1, 2, 1))
	g.EndTurn()
	require.True(t, g.Move(8, 3, 6, 3))

	seen := map[*Piece]Coord{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if pc := g.board.cells[r][c]; pc != nil {
				_, dup := seen[pc]
				require.False(t, dup, "piece at (%d,%d) is referenced twice", r, c)
				seen[pc] = Coord{Row: r, Col: c}
			}
		}
	}
	require.Len(t, seen, 20)
}

func TestConfigureSeat(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)

	require.True(t, g.ConfigureSeat(SeatBottom, "alice", "#FFFFFF", true))
	p, ok := g.SeatInfo(SeatBottom)
	require.True(t, ok)
	require.Equal(t, "alice", p.Name)
	require.Equal(t, "#FFFFFF", p.Color)
	require.True(t, p.AI)

	require.True(t, g.ConfigureSeat(SeatBottom, "", "", false), "empty values keep the current identity")
	p, _ = g.SeatInfo(SeatBottom)
	require.Equal(t, "alice", p.Name)
	require.Equal(t, "#FFFFFF", p.Color)
	require.False(t, p.AI)

	require.False(t, g.ConfigureSeat(SeatLeft, "bob", "", false), "side seats do not exist in a two-seat game")
	_, ok = g.SeatInfo(SeatLeft)
	require.False(t, ok)
}

func TestInitKeepsIdentitiesAndClearsCaptures(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	require.True(t, g.ConfigureSeat(SeatTop, "carol", "", false))

	g.board.clear()
	put(g, 4, 4, Probe, SeatBottom, DirS)
	put(g, 5, 4, Probe, SeatTop, DirN)
	require.True(t, g.Move(4, 4, 5, 4))
	g.EndTurn()
	require.Len(t, g.Captured(SeatBottom), 1)

	g.Init()

	require.Empty(t, g.Captured(SeatBottom), "re-initialization clears captures")
	require.Equal(t, 20, g.board.count())
	require.Equal(t, SeatBottom, g.CurrentSeat())
	require.Equal(t, ActionNone, g.LastAction())
	p, _ := g.SeatInfo(SeatTop)
	require.Equal(t, "carol", p.Name, "seat identities persist across re-initialization")
}

func TestCapturedReturnsCopies(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	g.board.clear()
	put(g, 4, 4, Probe, SeatBottom, DirS)
	put(g, 5, 4, Probe, SeatTop, DirN)
	require.True(t, g.Move(4, 4, 5, 4))

	captured := g.Captured(SeatBottom)
	captured[0].Type = Lance

	require.Equal(t, Probe, g.Captured(SeatBottom)[0].Type, "callers get value copies")
	require.Nil(t, g.Captured(SeatNone))
}

func TestSnapshot(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	st := g.Snapshot()

	require.Equal(t, "bottom", st.Turn)
	require.Equal(t, "none", st.LastAction)
	require.Equal(t, "2-seat", st.Mode)
	require.Equal(t, "shield-pivot", st.Rule)
	require.False(t, st.BottomOnTop)
	require.False(t, st.Over)
	require.Empty(t, st.Winner)

	require.Len(t, st.Seats, 2)
	require.Contains(t, st.Seats, "bottom")
	require.Contains(t, st.Seats, "top")
	require.Equal(t, "Player 1", st.Seats["bottom"].Name)
	require.Equal(t, "#32CD32", st.Seats["bottom"].Color)
	require.Equal(t, "Player 2", st.Seats["top"].Name)

	cmd := st.Grid[0][4]
	require.NotNil(t, cmd)
	require.Equal(t, "Commander", cmd.Type)
	require.Equal(t, "bottom", cmd.Owner)
	require.Equal(t, "S", cmd.Facing)
	require.Nil(t, st.Grid[4][4])
}

func TestSnapshotAfterWin(t *testing.T) {
	g := New(ModeTwoSeat, RuleShieldPivot)
	g.board.clear()
	put(g, 4, 4, Probe, SeatBottom, DirS)
	put(g, 5, 4, Commander, SeatTop, DirN)
	require.True(t, g.Move(4, 4, 5, 4))

	st := g.Snapshot()

	require.True(t, st.Over)
	require.Equal(t, "bottom", st.Winner)
	require.Len(t, st.Seats["bottom"].Captured, 1)
	require.Equal(t, "Commander", st.Seats["bottom"].Captured[0].Type)
	require.Equal(t, "top", st.Seats["bottom"].Captured[0].Owner)
}
