package othello

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

const (
	BoardStringLength = 32

	notAFile   uint64 = 0xfefefefefefefefe
	notHFile   uint64 = 0x7f7f7f7f7f7f7f7f
	allSquares uint64 = 0xffffffffffffffff
)

var errOverlap = errors.New("invalid board: white and black discs cannot overlap")

// direction is a compass step on the bitboard. The mask holds the squares a
// shifted disc may land on; it removes the file a step would wrap into.
type direction struct {
	shift int
	mask  uint64
}

var directions = [8]direction{
	{shift: 1, mask: notAFile},    // east
	{shift: -1, mask: notHFile},   // west
	{shift: 8, mask: allSquares},  // south
	{shift: -8, mask: allSquares}, // north
	{shift: 9, mask: notAFile},    // south-east
	{shift: 7, mask: notHFile},    // south-west
	{shift: -7, mask: notAFile},   // north-east
	{shift: -9, mask: notHFile},   // north-west
}

func (d direction) step(x uint64) uint64 {
	if d.shift > 0 {
		return (x << uint(d.shift)) & d.mask
	}
	return (x >> uint(-d.shift)) & d.mask
}

// Board holds the discs of both colors. Boards are values: every operation
// returns a new Board.
type Board struct {
	white uint64
	black uint64
}

// NewBoard creates a board from a white and black bitboard.
func NewBoard(white, black uint64) (Board, error) {
	if white&black != 0 {
		return Board{}, errOverlap
	}

	return Board{
		white: white,
		black: black,
	}, nil
}

// NewBoardMust creates a board from a white and black bitboard
// and panics if the board is invalid.
func NewBoardMust(white, black uint64) Board {
	b, err := NewBoard(white, black)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardStart creates a board with the starting position.
func NewBoardStart() Board {
	return NewBoardMust(0x0000001008000000, 0x0000000810000000)
}

// NewBoardEmpty creates a board without discs.
func NewBoardEmpty() Board {
	return Board{}
}

// ParseBoard parses the output of Board.String.
func ParseBoard(s string) (Board, error) {
	if len(s) != BoardStringLength {
		return Board{}, fmt.Errorf("board string must be %d characters long, got %d", BoardStringLength, len(s))
	}

	white, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid white discs: %w", err)
	}

	black, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid black discs: %w", err)
	}

	return NewBoard(white, black)
}

// White returns the white bitboard.
func (b Board) White() uint64 {
	return b.white
}

// Black returns the black bitboard.
func (b Board) Black() uint64 {
	return b.black
}

// Discs returns the bitboard of a player.
func (b Board) Discs(p Player) uint64 {
	if p == White {
		return b.white
	}
	return b.black
}

// sides returns the bitboards of the mover and its opponent.
func (b Board) sides(p Player) (uint64, uint64) {
	if p == White {
		return b.white, b.black
	}
	return b.black, b.white
}

// LegalMoves returns all empty squares where p captures at least one disc.
func (b Board) LegalMoves(p Player) MoveSet {
	player, opponent := b.sides(p)

	var moves uint64
	for _, d := range directions {
		moves |= movesInDirection(player, opponent, d)
	}

	return MoveSet(moves &^ (player | opponent))
}

// movesInDirection returns the squares that close a run of opponent discs
// starting next to a player disc. A run holds at most 6 discs.
func movesInDirection(player, opponent uint64, d direction) uint64 {
	run := d.step(player) & opponent
	chain := run

	for range 5 {
		run = d.step(run) & opponent
		chain |= run
	}

	return d.step(chain)
}

// HasMoves returns whether p has at least one legal move.
func (b Board) HasMoves(p Player) bool {
	return !b.LegalMoves(p).IsEmpty()
}

// ApplyMove places a disc of p on s and flips every enclosed run.
// The move must be drawn from LegalMoves; legality is not checked again.
func (b Board) ApplyMove(s Square, p Player) Board {
	player, opponent := b.sides(p)
	moveBit := s.Bit()

	var flipped uint64
	for _, d := range directions {
		flipped |= flipsInDirection(player, opponent, moveBit, d)
	}

	player |= moveBit | flipped
	opponent &^= flipped

	if p == White {
		return Board{white: player, black: opponent}
	}
	return Board{white: opponent, black: player}
}

// flipsInDirection returns the opponent run next to moveBit if a player disc
// closes it, otherwise 0.
func flipsInDirection(player, opponent, moveBit uint64, d direction) uint64 {
	var flipped uint64

	cur := d.step(moveBit)
	for cur&opponent != 0 {
		flipped |= cur
		cur = d.step(cur)
	}

	if cur&player == 0 {
		return 0
	}
	return flipped
}

// Score returns the number of white and black discs.
func (b Board) Score() (int, int) {
	return bits.OnesCount64(b.white), bits.OnesCount64(b.black)
}

// CountDiscs returns the number of discs on the board.
func (b Board) CountDiscs() int {
	return bits.OnesCount64(b.white | b.black)
}

// CountEmpties returns the number of empty squares.
func (b Board) CountEmpties() int {
	return MaxX*MaxY - b.CountDiscs()
}

// Empties returns the bitboard of empty squares.
func (b Board) Empties() uint64 {
	return ^(b.white | b.black)
}

// At returns the owner of a square, or false when it is empty.
func (b Board) At(s Square) (Player, bool) {
	switch {
	case b.white&s.Bit() != 0:
		return White, true
	case b.black&s.Bit() != 0:
		return Black, true
	}
	return Black, false
}

// String returns the board as 32 hex characters: white discs, then black discs.
func (b Board) String() string {
	return fmt.Sprintf("%016x%016x", b.white, b.black)
}
