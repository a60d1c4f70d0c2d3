package tetris

// Piece is the currently falling piece: its shape index, rotation state
// (0..3), and the field coordinates of the top-left of its 4x4 bounding box.
// Exactly one piece is falling at a time; it is replaced the instant it locks.
type Piece struct {
	Shape    int
	Rotation int
	X, Y     int
}

// SpawnPiece creates a fresh piece of the given shape at the spawn position:
// rotation 0, horizontally centered (x = fieldWidth/2 - 2), at the top row.
// Shape selection is the caller's concern; the controller draws uniformly
// from the seeded RNG.
func SpawnPiece(fieldWidth, shape int) Piece {
	return Piece{
		Shape:    shape,
		Rotation: 0,
		X:        fieldWidth/2 - 2,
		Y:        0,
	}
}
