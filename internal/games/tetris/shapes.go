// Package tetris implements the falling-block rules engine: playfield grid,
// piece geometry, collision testing, locking, line clearing, and scoring.
// The simulation is deterministic: the same seed and input sequence always
// produce the same run.
package tetris

// NumShapes is the number of tetromino kinds.
const NumShapes = 7

// Shape indices into the occupancy table.
const (
	ShapeI = iota
	ShapeT
	ShapeO
	ShapeL
	ShapeJ
	ShapeS
	ShapeZ
)

// shapes holds the 4x4 occupancy pattern of each tetromino kind, row-major
// (index = y*4 + x at rotation 0). 1 marks a block cell.
var shapes = [NumShapes][16]byte{
	// I
	{
		0, 0, 1, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
	},
	// T
	{
		0, 0, 1, 0,
		0, 1, 1, 0,
		0, 0, 1, 0,
		0, 0, 0, 0,
	},
	// O
	{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	},
	// L
	{
		0, 0, 1, 0,
		0, 1, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 0,
	},
	// J
	{
		0, 1, 0, 0,
		0, 1, 1, 0,
		0, 0, 1, 0,
		0, 0, 0, 0,
	},
	// S
	{
		0, 1, 0, 0,
		0, 1, 0, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	},
	// Z
	{
		0, 0, 1, 0,
		0, 0, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	},
}

// shapeNames gives a one-letter name per shape index, for HUD display.
var shapeNames = [NumShapes]string{"I", "T", "O", "L", "J", "S", "Z"}

// Rotate maps a local cell (px, py) of a piece's 4x4 grid plus a rotation
// state r to an index into the piece's flat 16-cell occupancy pattern.
// r is reduced modulo 4; negative values normalize into 0..3, so the
// function is total over any integer r.
func Rotate(px, py, r int) int {
	switch ((r % 4) + 4) % 4 {
	case 1: // 90 degrees
		return 12 + py - px*4
	case 2: // 180 degrees
		return 15 - py*4 - px
	case 3: // 270 degrees
		return 3 - py + px*4
	default: // 0 degrees
		return py*4 + px
	}
}

// ShapeOccupied reports whether the given shape has a block at local cell
// (px, py) when rotated to rotation state r.
func ShapeOccupied(shape, rotation, px, py int) bool {
	return shapes[shape][Rotate(px, py, rotation)] != 0
}

// ShapeName returns the display letter of a shape index ("I", "T", ...).
func ShapeName(shape int) string {
	if shape < 0 || shape >= NumShapes {
		return "?"
	}
	return shapeNames[shape]
}
