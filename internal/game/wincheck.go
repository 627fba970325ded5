package game

// Winner returns the seat that has captured an enemy Commander, or
// SeatNone while no one has. Capturing any Commander ends the game
// immediately, in four-seat games included.
func (g *Game) Winner() Seat {
	for _, s := range g.mode.Seats() {
		for _, pc := range g.players[s].captured {
			if pc.Type == Commander {
				return s
			}
		}
	}
	return SeatNone
}

// Over reports whether the game has been decided.
func (g *Game) Over() bool {
	return g.Winner() != SeatNone
}
