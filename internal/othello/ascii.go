package othello

import (
	"fmt"
	"io"
	"os"
)

// ASCIIArtLines returns the ascii art lines for the board. Squares in
// highlight that are empty are marked with a dot.
func (b Board) ASCIIArtLines(highlight MoveSet) []string {
	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := range MaxY {
		line := fmt.Sprintf("%d ", y+1)

		for x := range MaxX {
			square := Square((y * MaxX) + x)
			mask := square.Bit()

			switch {
			case b.white&mask != 0:
				line += "○ "
			case b.black&mask != 0:
				line += "● "
			case uint64(highlight)&mask != 0:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}

// Fprint writes the board, the score and the side to move to w.
func (g *Game) Fprint(w io.Writer) error {
	for _, line := range g.board.ASCIIArtLines(g.LegalMoves()) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	white, black := g.board.Score()
	status := fmt.Sprintf("%s to move", g.toMove)
	if g.gameOver {
		status = "game over"
	}

	_, err := fmt.Fprintf(w, "○ %d - %d ●  %s\n", white, black, status)
	return err
}

// Print prints the game to the console.
func (g *Game) Print() {
	_ = g.Fprint(os.Stdout)
}
