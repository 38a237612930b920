package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestRunQuit(t *testing.T) {
	var out bytes.Buffer

	game := othello.NewGame()
	err := run(strings.NewReader("z9\nq\n"), &out, game, engine.NewMust(1), othello.Black)
	require.ErrorIs(t, err, errQuit)

	require.Contains(t, out.String(), `invalid move "z9", legal moves: [d3 c4 f5 e6]`)
	require.Empty(t, game.Moves())
}

func TestRunEOF(t *testing.T) {
	var out bytes.Buffer

	game := othello.NewGame()
	err := run(strings.NewReader("f5\n"), &out, game, engine.NewMust(1), othello.Black)
	require.ErrorIs(t, err, errQuit)

	// The human move and the engine reply were played.
	moves := game.Moves()
	require.Len(t, moves, 2)
	require.Equal(t, othello.Square(37), moves[0])
	require.Contains(t, out.String(), "engine plays ")
}

func TestRunEngineOnly(t *testing.T) {
	var out bytes.Buffer

	// Nobody can move, so the game ends without reading input.
	game := othello.NewGameFromBoard(othello.NewBoardMust(0x0F, 0xF0), othello.Black)
	require.NoError(t, run(strings.NewReader(""), &out, game, engine.NewMust(1), othello.Black))
	require.Contains(t, out.String(), "Draw!")

	// A human playing a side that never moves sees the engine finish the game.
	game = othello.NewGameFromBoard(othello.NewBoardMust(1<<0, 1<<1|1<<3), othello.White)
	require.NoError(t, run(strings.NewReader(""), &out, game, engine.NewMust(2), othello.Black))
	require.Contains(t, out.String(), "white wins!")
}
