package othello

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	// PassMove is used in move lists for a forced pass.
	PassMove Square = -1

	MaxX = 8
	MaxY = 8
)

var ErrInvalidSquare = errors.New("invalid square")

// Square is a bit index on the board: 0 is a1 (top-left), 63 is h8.
type Square int

// Bit returns the singleton occupancy mask of the square.
func (s Square) Bit() uint64 {
	return uint64(1) << uint(s)
}

// IsValid returns whether the square lies on the board.
func (s Square) IsValid() bool {
	return s >= 0 && s < MaxX*MaxY
}

// String returns the field notation, e.g. "f5".
func (s Square) String() string {
	if s == PassMove {
		return "--"
	}
	if !s.IsValid() {
		return fmt.Sprintf("Square(%d)", int(s))
	}
	return fmt.Sprintf("%c%c", 'a'+rune(s%MaxX), '1'+rune(s/MaxX))
}

// ParseSquare converts a field notation (e.g. "a1", "H8") to a square.
func ParseSquare(field string) (Square, error) {
	if len(field) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, field)
	}

	field = strings.ToLower(field)

	if field == "--" || field == "ps" || field == "pa" {
		return PassMove, nil
	}

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, field)
	}

	x := int(field[0] - 'a')
	y := int(field[1] - '1')
	return Square(y*MaxX + x), nil
}

// MoveSet is a set of squares stored as an occupancy mask.
type MoveSet uint64

// Count returns the number of squares in the set.
func (m MoveSet) Count() int {
	return bits.OnesCount64(uint64(m))
}

// IsEmpty returns whether the set has no squares.
func (m MoveSet) IsEmpty() bool {
	return m == 0
}

// Contains checks whether a square is in the set.
func (m MoveSet) Contains(s Square) bool {
	return s.IsValid() && uint64(m)&s.Bit() != 0
}

// All yields the squares in ascending order.
func (m MoveSet) All() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for rest := uint64(m); rest != 0; rest &= rest - 1 {
			if !yield(Square(bits.TrailingZeros64(rest))) {
				return
			}
		}
	}
}

// Squares returns the squares in ascending order.
func (m MoveSet) Squares() []Square {
	squares := make([]Square, 0, m.Count())
	for s := range m.All() {
		squares = append(squares, s)
	}
	return squares
}
