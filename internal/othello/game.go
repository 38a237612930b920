package othello

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

const GameStringLength = BoardStringLength + 2

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// Game tracks a board together with the side to move and the played moves.
type Game struct {
	board    Board
	toMove   Player
	gameOver bool

	// moves lists the played squares. Passes are implied and not stored.
	moves []Square
}

// NewGame creates a game from the starting position with Black to move.
func NewGame() *Game {
	return NewGameFromBoard(NewBoardStart(), Black)
}

// NewGameFromBoard creates a game from a custom position. If the side to move
// cannot move, the turn passes; if neither side can move the game is over.
func NewGameFromBoard(board Board, toMove Player) *Game {
	g := &Game{
		board:  board,
		toMove: toMove,
		moves:  make([]Square, 0),
	}

	if !board.HasMoves(toMove) {
		g.toMove = toMove.Opponent()
		g.gameOver = !board.HasMoves(g.toMove)
	}

	return g
}

// ParseGame parses the output of Game.String. The pass rule is applied to
// the parsed position, see NewGameFromBoard.
func ParseGame(s string) (*Game, error) {
	board, toMove, err := ParsePosition(s)
	if err != nil {
		return nil, err
	}

	return NewGameFromBoard(board, toMove), nil
}

// ParsePosition parses the output of Game.String and returns the side to move
// as written, even when that side has to pass.
func ParsePosition(s string) (Board, Player, error) {
	if len(s) != GameStringLength {
		return Board{}, 0, fmt.Errorf("game string must be %d characters long, got %d", GameStringLength, len(s))
	}

	board, err := ParseBoard(s[:BoardStringLength])
	if err != nil {
		return Board{}, 0, err
	}

	switch s[BoardStringLength:] {
	case "-b":
		return board, Black, nil
	case "-w":
		return board, White, nil
	}

	return Board{}, 0, fmt.Errorf("invalid turn: %s", s[BoardStringLength:])
}

// NewGameRandom plays random legal moves from the start until the board
// holds the requested number of discs.
func NewGameRandom(rng *rand.Rand, discs int) (*Game, error) {
	if discs < 4 || discs > MaxX*MaxY {
		return nil, fmt.Errorf("invalid number of discs: %d", discs)
	}

	game := NewGame()

	for game.board.CountDiscs() < discs {
		if game.gameOver {
			game = NewGame()
			continue
		}

		moves := game.LegalMoves().Squares()
		move := moves[rng.Intn(len(moves))]

		if err := game.Play(move); err != nil {
			return nil, fmt.Errorf("failed to play random move: %w", err)
		}
	}

	return game, nil
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// CurrentPlayer returns the side to move.
func (g *Game) CurrentPlayer() Player {
	return g.toMove
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() MoveSet {
	return g.board.LegalMoves(g.toMove)
}

// GameOver returns whether neither side can move.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Moves returns a copy of the played squares.
func (g *Game) Moves() []Square {
	return append([]Square{}, g.moves...)
}

// ApplyMove places a disc for the side to move without validation and
// without switching turns.
func (g *Game) ApplyMove(s Square) {
	g.board = g.board.ApplyMove(s, g.toMove)
	g.moves = append(g.moves, s)
}

// SwitchPlayer hands the turn to the opponent. If the opponent cannot move
// the turn comes back; if neither side can move the game is over.
func (g *Game) SwitchPlayer() {
	g.toMove = g.toMove.Opponent()

	if g.board.HasMoves(g.toMove) {
		return
	}

	g.toMove = g.toMove.Opponent()

	if !g.board.HasMoves(g.toMove) {
		g.gameOver = true
	}
}

// Play validates and applies a move, then switches turns.
func (g *Game) Play(s Square) error {
	if g.gameOver {
		return ErrGameOver
	}

	if !g.LegalMoves().Contains(s) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, s)
	}

	g.ApplyMove(s)
	g.SwitchPlayer()
	return nil
}

// Winner returns the player with most discs. The boolean is false on a draw.
func (g *Game) Winner() (Player, bool) {
	white, black := g.board.Score()

	switch {
	case white > black:
		return White, true
	case black > white:
		return Black, true
	}
	return Black, false
}

// String returns the board string followed by "-b" or "-w".
func (g *Game) String() string {
	turn := "-b"
	if g.toMove == White {
		turn = "-w"
	}
	return g.board.String() + turn
}
