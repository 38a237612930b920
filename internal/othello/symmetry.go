package othello

import "math/bits"

// Symmetries is the number of board symmetries: combinations of a
// horizontal, vertical and diagonal flip.
const Symmetries = 8

// inverseRotation maps a rotation to the rotation that undoes it.
var inverseRotation = [Symmetries]int{0, 1, 2, 3, 4, 6, 5, 7}

// flipHorizontally mirrors the bits of a bitboard left to right.
func flipHorizontally(x uint64) uint64 {
	k1 := uint64(0x5555555555555555)
	k2 := uint64(0x3333333333333333)
	k4 := uint64(0x0F0F0F0F0F0F0F0F)
	x = ((x >> 1) & k1) | ((x & k1) << 1)
	x = ((x >> 2) & k2) | ((x & k2) << 2)
	x = ((x >> 4) & k4) | ((x & k4) << 4)
	return x
}

// flipVertically mirrors the bits of a bitboard top to bottom.
func flipVertically(x uint64) uint64 {
	k1 := uint64(0x00FF00FF00FF00FF)
	k2 := uint64(0x0000FFFF0000FFFF)
	x = ((x >> 8) & k1) | ((x & k1) << 8)
	x = ((x >> 16) & k2) | ((x & k2) << 16)
	x = (x >> 32) | (x << 32)
	return x
}

// flipDiagonally mirrors the bits of a bitboard along the a1-h8 diagonal.
func flipDiagonally(x uint64) uint64 {
	k1 := uint64(0x5500550055005500)
	k2 := uint64(0x3333000033330000)
	k4 := uint64(0x0F0F0F0F00000000)
	t := k4 & (x ^ (x << 28))
	x ^= t ^ (t >> 28)
	t = k2 & (x ^ (x << 14))
	x ^= t ^ (t >> 14)
	t = k1 & (x ^ (x << 7))
	x ^= t ^ (t >> 7)
	return x
}

func rotateBits(x uint64, rotation int) uint64 {
	if rotation&1 != 0 {
		x = flipHorizontally(x)
	}
	if rotation&2 != 0 {
		x = flipVertically(x)
	}
	if rotation&4 != 0 {
		x = flipDiagonally(x)
	}
	return x
}

// Rotate applies one of the 8 symmetries to the board.
func (b Board) Rotate(rotation int) Board {
	return Board{
		white: rotateBits(b.white, rotation),
		black: rotateBits(b.black, rotation),
	}
}

func (b Board) isLessThan(other Board) bool {
	if b.white != other.white {
		return b.white < other.white
	}
	return b.black < other.black
}

// Normalize returns the smallest symmetric variant of the board and the
// rotation that produced it.
func (b Board) Normalize() (Board, int) {
	minBoard := b
	rotation := 0

	for r := 1; r < Symmetries; r++ {
		rotated := b.Rotate(r)

		if rotated.isLessThan(minBoard) {
			minBoard = rotated
			rotation = r
		}
	}

	return minBoard, rotation
}

// Rotate maps a square into the frame of a rotated board.
func (s Square) Rotate(rotation int) Square {
	if !s.IsValid() {
		return s
	}
	return Square(bits.TrailingZeros64(rotateBits(s.Bit(), rotation)))
}

// Unrotate maps a square of a rotated board back to the original frame.
func (s Square) Unrotate(rotation int) Square {
	return s.Rotate(inverseRotation[rotation])
}
