package game

// mayMove reports whether the active seat may still move a piece of the
// given type this turn. Under the shield-pivot rule a Shield may combine
// a rotation with a move; every other piece gets one action.
func (g *Game) mayMove(t PieceType) bool {
	switch g.rule {
	case RuleSingleAction:
		return g.lastAction == ActionNone
	default:
		return g.lastAction != ActionRotated || t == Shield
	}
}

// mayRotate is the rotation counterpart of mayMove.
func (g *Game) mayRotate(t PieceType) bool {
	switch g.rule {
	case RuleSingleAction:
		return g.lastAction == ActionNone
	default:
		return g.lastAction != ActionMoved || t == Shield
	}
}

// destinations computes where the piece at row,col may move: straight
// along its facing, up to its reach, through empty cells, stopping on the
// first occupied cell, which is included only when it holds an enemy
// piece. A Commander whose facing has drifted off a cardinal has no
// moves, and a piece whose type may not move this turn has none either.
func (g *Game) destinations(row, col int, pc *Piece) []Coord {
	if !pc.Facing.Valid() || !g.mayMove(pc.Type) {
		return nil
	}
	if pc.Type == Commander && !pc.Facing.Cardinal() {
		return nil
	}
	dr, dc := pc.Facing.Vector()
	var out []Coord
	r, c := row, col
	for i := 0; i < pc.Type.Reach(); i++ {
		r += dr
		c += dc
		if !IsValidCell(r, c) {
			break
		}
		target := g.board.cells[r][c]
		if target == nil {
			out = append(out, Coord{Row: r, Col: c})
			continue
		}
		if target.Owner != pc.Owner {
			out = append(out, Coord{Row: r, Col: c})
		}
		break
	}
	return out
}

// ValidMoves returns the destinations currently legal for the piece at
// row,col, or nil when the cell is empty or the piece does not belong to
// the active seat.
func (g *Game) ValidMoves(row, col int) []Coord {
	pc := g.board.At(row, col)
	if pc == nil || pc.Owner != g.turn {
		return nil
	}
	g.emit(Event{
		Kind:  EventPieceSelected,
		Seat:  pc.Owner.String(),
		Piece: pc.Type.String(),
		At:    &Coord{Row: row, Col: col},
	})
	return g.destinations(row, col, pc)
}

// Move executes a move for the active seat. It re-derives the legal
// destinations for the source piece and rejects the move unless the
// target is among them, so a stale or fabricated request cannot corrupt
// the board. A displaced enemy piece joins the mover's capture list.
func (g *Game) Move(fromRow, fromCol, toRow, toCol int) bool {
	pc := g.board.At(fromRow, fromCol)
	if pc == nil || pc.Owner != g.turn {
		return false
	}
	ok := false
	for _, d := range g.destinations(fromRow, fromCol, pc) {
		if d.Row == toRow && d.Col == toCol {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}
	taken := g.board.move(fromRow, fromCol, toRow, toCol)
	if taken != nil {
		g.players[pc.Owner].captured = append(g.players[pc.Owner].captured, taken)
		g.emit(Event{
			Kind:  EventPieceCaptured,
			Seat:  pc.Owner.String(),
			Taken: taken.Type.String(),
			Owner: taken.Owner.String(),
			At:    &Coord{Row: toRow, Col: toCol},
		})
	}
	g.lastAction = ActionMoved
	g.emit(Event{
		Kind:  EventPieceMoved,
		Seat:  pc.Owner.String(),
		Piece: pc.Type.String(),
		From:  &Coord{Row: fromRow, Col: fromCol},
		At:    &Coord{Row: toRow, Col: toCol},
	})
	if taken != nil && taken.Type == Commander {
		g.emit(Event{Kind: EventGameOver, Seat: pc.Owner.String()})
	}
	return true
}

// Rotate turns the piece at row,col one step clockwise or
// counterclockwise. A Commander never rotates: one step from a cardinal
// facing always lands on a diagonal, which it may not hold.
func (g *Game) Rotate(row, col int, clockwise bool) bool {
	pc := g.board.At(row, col)
	if pc == nil || pc.Owner != g.turn {
		return false
	}
	if !pc.Facing.Valid() || !g.mayRotate(pc.Type) {
		return false
	}
	next := pc.Facing.Rotated(clockwise)
	if pc.Type == Commander && !next.Cardinal() {
		return false
	}
	pc.Facing = next
	g.lastAction = ActionRotated
	g.emit(Event{
		Kind:   EventPieceRotated,
		Seat:   pc.Owner.String(),
		Piece:  pc.Type.String(),
		At:     &Coord{Row: row, Col: col},
		Facing: next.String(),
	})
	return true
}
