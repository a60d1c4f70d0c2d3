package tetris

import "hash/fnv"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lines      int
	State      State
	PieceShape int
	PieceRot   int
	PieceX     int
	PieceY     int
	FieldHash  uint64 // FNV-1a over the raw field cells
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	h := fnv.New64a()
	for y := 0; y < g.field.Height(); y++ {
		for x := 0; x < g.field.Width(); x++ {
			h.Write([]byte{byte(g.field.Get(x, y))})
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Lines:      g.lines,
		State:      g.state,
		PieceShape: g.piece.Shape,
		PieceRot:   g.piece.Rotation,
		PieceX:     g.piece.X,
		PieceY:     g.piece.Y,
		FieldHash:  h.Sum64(),
	}
}

// Hash folds the snapshot into a single comparable value.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	write := func(v uint64) {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	write(s.Tick)
	write(uint64(s.Score))
	write(uint64(s.Lines))
	write(uint64(s.State))
	write(uint64(s.PieceShape))
	write(uint64(s.PieceRot))
	write(uint64(int64(s.PieceX)))
	write(uint64(int64(s.PieceY)))
	write(s.FieldHash)
	return h.Sum64()
}
