package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/othello"
)

var errQuit = errors.New("quit")

func main() {
	config.SetLogLevel()

	depth := flag.Int("depth", 6, "engine search depth in plies")
	color := flag.String("color", "black", "the color you play: black or white")
	start := flag.String("start", othello.NewGame().String(), "the start position")
	flag.Parse()

	human, err := othello.ParsePlayer(*color)
	if err != nil {
		slog.Error("Invalid color", "error", err)
		os.Exit(1)
	}

	e, err := engine.New(*depth)
	if err != nil {
		slog.Error("Invalid depth", "error", err)
		os.Exit(1)
	}

	game, err := othello.ParseGame(*start)
	if err != nil {
		slog.Error("Invalid start position", "error", err)
		os.Exit(1)
	}

	if err = run(os.Stdin, os.Stdout, game, e, human); err != nil && !errors.Is(err, errQuit) {
		slog.Error("Game stopped", "error", err)
		os.Exit(1)
	}
}

// run plays a game between a human reading from in and the engine.
func run(in io.Reader, out io.Writer, game *othello.Game, e *engine.Engine, human othello.Player) error {
	scanner := bufio.NewScanner(in)

	for !game.GameOver() {
		if err := game.Fprint(out); err != nil {
			return err
		}

		if game.CurrentPlayer() != human {
			if err := engineMove(out, game, e); err != nil {
				return err
			}
			continue
		}

		move, err := readMove(scanner, out, game)
		if err != nil {
			return err
		}

		if err = game.Play(move); err != nil {
			return err
		}
	}

	if err := game.Fprint(out); err != nil {
		return err
	}

	winner, ok := game.Winner()
	if !ok {
		_, err := fmt.Fprintln(out, "Draw!")
		return err
	}

	_, err := fmt.Fprintf(out, "%s wins!\n", winner)
	return err
}

func engineMove(out io.Writer, game *othello.Game, e *engine.Engine) error {
	result := e.Search(game)
	if !result.HasMove {
		return fmt.Errorf("engine did not find a move in %s", game)
	}

	_, err := fmt.Fprintf(out, "engine plays %s (score %d, %d nodes, %s)\n",
		result.Move, result.Score, result.Stats.Nodes, result.Stats.Duration)
	if err != nil {
		return err
	}

	return game.Play(result.Move)
}

// readMove prompts until a legal move is entered.
func readMove(scanner *bufio.Scanner, out io.Writer, game *othello.Game) (othello.Square, error) {
	for {
		if _, err := fmt.Fprint(out, "your move: "); err != nil {
			return 0, err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, errQuit
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "quit" || text == "q" {
			return 0, errQuit
		}

		move, err := othello.ParseSquare(text)
		if err != nil || !game.LegalMoves().Contains(move) {
			if _, err = fmt.Fprintf(out, "invalid move %q, legal moves: %v\n", text, game.LegalMoves().Squares()); err != nil {
				return 0, err
			}
			continue
		}

		return move, nil
	}
}
