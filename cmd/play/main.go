package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ploy/internal/game"
)

func main() {
	players := 2
	if len(os.Args) > 1 {
		if n, err := strconv.Atoi(os.Args[1]); err == nil {
			players = n
		}
	}
	mode, ok := game.ModeForPlayers(players)
	if !ok {
		fmt.Println("Ploy is played by 2 or 4 players.")
		os.Exit(1)
	}
	g := game.New(mode, game.RuleShieldPivot)

	reader := bufio.NewReader(os.Stdin)
	for !g.Over() {
		seat := g.CurrentSeat()
		fmt.Printf("\nTurn: %s (last action: %s)\n", seat, g.LastAction())
		fmt.Printf("Captured: %s\n", capturedLine(g, seat))
		printBoard(g)

		fmt.Println("Commands: move r c r c | rotate r c cw|ccw | moves r c | end | flip | quit")
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			parts := strings.Fields(line)
			if len(parts) == 0 {
				continue
			}
			if apply(g, parts) {
				break
			}
		}
	}

	fmt.Printf("\nGame over! Winner: %s\n", g.Winner())
	js, _ := json.MarshalIndent(g.Snapshot(), "", "  ")
	fmt.Println(string(js))
}

// apply runs one command and reports whether the board should be redrawn.
func apply(g *game.Game, parts []string) bool {
	switch parts[0] {
	case "move":
		if len(parts) != 5 {
			fmt.Println("Usage: move fromRow fromCol toRow toCol")
			return false
		}
		n := atoiAll(parts[1:])
		if n == nil {
			fmt.Println("Rows and columns must be numbers 0-8.")
			return false
		}
		if !g.Move(n[0], n[1], n[2], n[3]) {
			fmt.Println("Illegal move.")
			return false
		}
		return true
	case "rotate":
		if len(parts) != 4 || (parts[3] != "cw" && parts[3] != "ccw") {
			fmt.Println("Usage: rotate row col cw|ccw")
			return false
		}
		n := atoiAll(parts[1:3])
		if n == nil {
			fmt.Println("Rows and columns must be numbers 0-8.")
			return false
		}
		if !g.Rotate(n[0], n[1], parts[3] == "cw") {
			fmt.Println("Illegal rotation.")
			return false
		}
		return true
	case "moves":
		if len(parts) != 3 {
			fmt.Println("Usage: moves row col")
			return false
		}
		n := atoiAll(parts[1:])
		if n == nil {
			fmt.Println("Rows and columns must be numbers 0-8.")
			return false
		}
		moves := g.ValidMoves(n[0], n[1])
		if len(moves) == 0 {
			fmt.Println("No legal destinations.")
			return false
		}
		for _, m := range moves {
			fmt.Printf("(%d,%d) ", m.Row, m.Col)
		}
		fmt.Println()
		return false
	case "end":
		g.EndTurn()
		return true
	case "flip":
		g.FlipOrientation()
		return true
	case "quit":
		os.Exit(0)
	default:
		fmt.Println("Unknown command.")
	}
	return false
}

func atoiAll(parts []string) []int {
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		out[i] = n
	}
	return out
}

func printBoard(g *game.Game) {
	snap := g.Snapshot()
	fmt.Print("   ")
	for c := 0; c < game.Size; c++ {
		fmt.Printf("%-6d", c)
	}
	fmt.Println()
	for r := 0; r < game.Size; r++ {
		fmt.Printf("%d  ", r)
		for c := 0; c < game.Size; c++ {
			cell := snap.Grid[r][c]
			if cell == nil {
				fmt.Printf("%-6s", ".")
			} else {
				fmt.Printf("%-6s", cellLabel(cell))
			}
		}
		fmt.Println()
	}
}

// cellLabel renders a piece as type initial, owner initial and facing,
// e.g. "Cb:S" for the bottom commander facing south.
func cellLabel(p *game.PieceState) string {
	return fmt.Sprintf("%c%c:%s", p.Type[0], p.Owner[0], p.Facing)
}

func capturedLine(g *game.Game, seat game.Seat) string {
	caps := g.Captured(seat)
	if len(caps) == 0 {
		return "none"
	}
	names := make([]string, len(caps))
	for i, p := range caps {
		names[i] = p.Type.String()
	}
	return strings.Join(names, ", ")
}
