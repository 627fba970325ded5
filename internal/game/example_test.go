package game_test

import (
	"fmt"

	"ploy/internal/game"
)

// Example walks the opening of a two-seat game: the corner Lance has a
// clear lane while the Commander is blocked by its own Shield.
func Example() {
	g := game.New(game.ModeTwoSeat, game.RuleShieldPivot)

	fmt.Println("lance opening moves:", len(g.ValidMoves(0, 0)))
	fmt.Println("commander opening moves:", len(g.ValidMoves(0, 4)))

	g.EndTurn()
	fmt.Println("turn:", g.CurrentSeat())
	fmt.Println("over:", g.Over())

	// Output:
	// lance opening moves: 3
	// commander opening moves: 0
	// turn: top
	// over: false
}
