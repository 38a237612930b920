package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/othello"
)

var ErrNoMove = errors.New("engine did not find a move")

// Ply is one move of a match.
type Ply struct {
	Player othello.Player
	Move   othello.Square
	Score  int8
	Stats  engine.Stats
}

// Record is a finished match between two engines.
type Record struct {
	Start      string
	BlackDepth int
	WhiteDepth int
	Plies      []Ply
	WhiteDiscs int
	BlackDiscs int

	// Winner is only meaningful when Draw is false.
	Winner othello.Player
	Draw   bool

	Stats engine.Stats
}

// Moves returns the played squares in order.
func (r *Record) Moves() []othello.Square {
	moves := make([]othello.Square, len(r.Plies))
	for i, ply := range r.Plies {
		moves[i] = ply.Move
	}
	return moves
}

// Outcome returns "black", "white" or "draw".
func (r *Record) Outcome() string {
	if r.Draw {
		return "draw"
	}
	return r.Winner.String()
}

// Play lets two engines play from start until the game is over. A nil start
// means the regular starting position. The context is checked between moves;
// a running search always completes.
func Play(ctx context.Context, black, white *engine.Engine, start *othello.Game) (*Record, error) {
	if start == nil {
		start = othello.NewGame()
	}

	game := othello.NewGameFromBoard(start.Board(), start.CurrentPlayer())

	record := &Record{
		Start:      game.String(),
		BlackDepth: black.Depth(),
		WhiteDepth: white.Depth(),
		Plies:      make([]Ply, 0, game.Board().CountEmpties()),
	}

	for !game.GameOver() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match interrupted: %w", err)
		}

		player := game.CurrentPlayer()

		e := black
		if player == othello.White {
			e = white
		}

		result := e.Search(game)
		if !result.HasMove {
			return nil, fmt.Errorf("%w: %s to move in %s", ErrNoMove, player, game)
		}

		if err := game.Play(result.Move); err != nil {
			return nil, fmt.Errorf("failed to play engine move: %w", err)
		}

		record.Plies = append(record.Plies, Ply{
			Player: player,
			Move:   result.Move,
			Score:  result.Score,
			Stats:  result.Stats,
		})
		record.Stats.Add(result.Stats)
	}

	record.WhiteDiscs, record.BlackDiscs = game.Board().Score()
	winner, ok := game.Winner()
	record.Winner = winner
	record.Draw = !ok

	slog.Debug("match finished",
		"black_depth", record.BlackDepth,
		"white_depth", record.WhiteDepth,
		"outcome", record.Outcome(),
		"white_discs", record.WhiteDiscs,
		"black_discs", record.BlackDiscs,
		"nodes", record.Stats.Nodes,
		"duration", record.Stats.Duration,
	)

	return record, nil
}
