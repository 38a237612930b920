package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquare_String(t *testing.T) {
	tests := []struct {
		square Square
		want   string
	}{
		{square: 0, want: "a1"},
		{square: 7, want: "h1"},
		{square: 19, want: "d3"},
		{square: 37, want: "f5"},
		{square: 56, want: "a8"},
		{square: 63, want: "h8"},
		{square: PassMove, want: "--"},
		{square: 64, want: "Square(64)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.square.String())
		})
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input   string
		want    Square
		wantErr bool
	}{
		{input: "a1", want: 0},
		{input: "h1", want: 7},
		{input: "F5", want: 37},
		{input: "h8", want: 63},
		{input: "--", want: PassMove},
		{input: "PS", want: PassMove},
		{input: "pa", want: PassMove},
		{input: "i1", wantErr: true},
		{input: "a9", wantErr: true},
		{input: "a0", wantErr: true},
		{input: "a10", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			square, err := ParseSquare(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSquare)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, square)
		})
	}

	for s := range Square(MaxX * MaxY) {
		parsed, err := ParseSquare(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}
}

func TestSquare_IsValid(t *testing.T) {
	require.True(t, Square(0).IsValid())
	require.True(t, Square(63).IsValid())
	require.False(t, Square(64).IsValid())
	require.False(t, PassMove.IsValid())
}

func TestMoveSet(t *testing.T) {
	moves := MoveSet(1<<44 | 1<<19 | 1<<37 | 1<<26)

	require.Equal(t, 4, moves.Count())
	require.False(t, moves.IsEmpty())
	require.True(t, moves.Contains(19))
	require.False(t, moves.Contains(20))
	require.False(t, moves.Contains(PassMove))
	require.Equal(t, []Square{19, 26, 37, 44}, moves.Squares())

	var first []Square
	for s := range moves.All() {
		first = append(first, s)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []Square{19, 26}, first)

	empty := MoveSet(0)
	require.True(t, empty.IsEmpty())
	require.Empty(t, empty.Squares())
}
