package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlipHorizontally(t *testing.T) {
	for i := range 64 {
		x := uint64(1 << i)

		row := i / 8
		col := i % 8

		flippedIndex := row*8 + 7 - col

		flipped := flipHorizontally(x)
		wantFlipped := uint64(1 << flippedIndex)
		require.Equal(t, wantFlipped, flipped)
	}
}

func TestFlipVertically(t *testing.T) {
	for i := range 64 {
		x := uint64(1 << i)

		row := i / 8
		col := i % 8

		flippedIndex := 8*(7-row) + col

		flipped := flipVertically(x)
		wantFlipped := uint64(1 << flippedIndex)
		require.Equal(t, wantFlipped, flipped)
	}
}

func TestFlipDiagonally(t *testing.T) {
	for i := range 64 {
		x := uint64(1 << i)

		row := i / 8
		col := i % 8

		flippedIndex := 8*col + row

		flipped := flipDiagonally(x)
		wantFlipped := uint64(1 << flippedIndex)
		require.Equal(t, wantFlipped, flipped)
	}
}

func TestSquare_RotateUnrotate(t *testing.T) {
	for rotation := range Symmetries {
		seen := make(map[Square]bool)

		for s := range Square(MaxX * MaxY) {
			rotated := s.Rotate(rotation)
			require.True(t, rotated.IsValid())
			require.Equal(t, s, rotated.Unrotate(rotation), "square %s rotation %d", s, rotation)
			seen[rotated] = true
		}

		require.Len(t, seen, MaxX*MaxY)
	}

	require.Equal(t, PassMove, PassMove.Rotate(3))
	require.Equal(t, PassMove, PassMove.Unrotate(5))
}

func TestBoard_RotateKeepsMoves(t *testing.T) {
	for _, board := range randomBoards(t, 4, 5) {
		for rotation := range Symmetries {
			rotated := board.Rotate(rotation)

			require.Equal(t, board.CountDiscs(), rotated.CountDiscs())

			for _, player := range []Player{Black, White} {
				want := MoveSet(rotateBits(uint64(board.LegalMoves(player)), rotation))
				require.Equal(t, want, rotated.LegalMoves(player))
			}
		}
	}
}

func TestBoard_Normalize(t *testing.T) {
	for _, board := range randomBoards(t, 5, 5) {
		normalized, rotation := board.Normalize()

		require.Equal(t, board.Rotate(rotation), normalized)

		for r := range Symmetries {
			other, _ := board.Rotate(r).Normalize()
			require.Equal(t, normalized, other)
			require.False(t, board.Rotate(r).isLessThan(normalized))
		}
	}

	start := NewBoardStart()
	normalized, _ := start.Normalize()
	require.Equal(t, start.CountDiscs(), normalized.CountDiscs())
}
