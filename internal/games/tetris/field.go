package tetris

// Default playfield dimensions, including the one-cell border on the left,
// right, and bottom edges.
const (
	DefaultFieldWidth  = 12
	DefaultFieldHeight = 18
)

// Cell is a single playfield cell.
// 0 = empty, 1..7 = a locked block typed by originating shape index + 1,
// 9 = permanent border.
type Cell uint8

const (
	CellEmpty  Cell = 0
	CellBorder Cell = 9
)

// Field is the grid of locked cells. Border cells (x==0, x==width-1, or
// y==height-1) hold CellBorder for the lifetime of the field and are never
// overwritten by gameplay.
type Field struct {
	width  int
	height int
	cells  []Cell // row-major, len = width*height
}

// NewField allocates a field of the given size with all playable cells empty
// and the border cells stamped.
func NewField(width, height int) *Field {
	f := &Field{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || x == width-1 || y == height-1 {
				f.cells[y*width+x] = CellBorder
			}
		}
	}
	return f
}

// Width returns the field width in cells, borders included.
func (f *Field) Width() int {
	return f.width
}

// Height returns the field height in cells, border row included.
func (f *Field) Height() int {
	return f.height
}

// Get returns the cell at (x, y). Out-of-bounds coordinates return
// CellBorder, so callers can treat the edge of the world like a border
// collision without special-casing.
func (f *Field) Get(x, y int) Cell {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return CellBorder
	}
	return f.cells[y*f.width+x]
}

// Set writes the cell at (x, y). Out-of-bounds writes are silently ignored.
func (f *Field) Set(x, y int, v Cell) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = v
}

// Fits reports whether a piece of the given shape and rotation can occupy
// position (posX, posY) without overlapping a locked block, a border cell,
// or the outside of the field. An occupied local cell falling out of bounds
// is a hard fail. The predicate is pure; it gates every move, rotation, and
// gravity step, and detects game over after each respawn.
func (f *Field) Fits(shape, rotation, posX, posY int) bool {
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			if !ShapeOccupied(shape, rotation, px, py) {
				continue
			}
			fieldX := posX + px
			fieldY := posY + py
			if fieldX < 0 || fieldX >= f.width || fieldY < 0 || fieldY >= f.height {
				return false
			}
			if f.cells[fieldY*f.width+fieldX] != CellEmpty {
				return false
			}
		}
	}
	return true
}

// LockPiece commits a piece's occupied cells into the field, storing
// shape index + 1 so values land in 1..7 (0 stays empty, 9 stays border).
// The caller is responsible for having verified the placement with Fits;
// this operation does not re-validate.
func (f *Field) LockPiece(p Piece) {
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			if !ShapeOccupied(p.Shape, p.Rotation, px, py) {
				continue
			}
			fieldX := p.X + px
			fieldY := p.Y + py
			if fieldX >= 0 && fieldX < f.width && fieldY >= 0 && fieldY < f.height {
				f.cells[fieldY*f.width+fieldX] = Cell(p.Shape + 1)
			}
		}
	}
}

// rowFull reports whether every interior cell of a row is occupied.
func (f *Field) rowFull(y int) bool {
	for x := 1; x < f.width-1; x++ {
		if f.cells[y*f.width+x] == CellEmpty {
			return false
		}
	}
	return true
}

// ClearLines removes every full interior row, compacts the remaining rows
// downward, zero-fills the vacated rows at the top, and returns the number
// of rows cleared.
//
// A single write cursor starts at the bottom playable row. Scanning source
// rows bottom to top, a full row is skipped (the cursor stays put) and a
// non-full row is copied down to the cursor, which then moves up one row.
// With k full rows the cursor ends at k-1, so the fill loop below handles
// both extremes: k=0 fills nothing, k=height-1 empties every playable row.
func (f *Field) ClearLines() int {
	cleared := 0
	write := f.height - 2

	for read := f.height - 2; read >= 0; read-- {
		if f.rowFull(read) {
			cleared++
			continue
		}
		if write != read {
			for x := 1; x < f.width-1; x++ {
				f.cells[write*f.width+x] = f.cells[read*f.width+x]
			}
		}
		write--
	}

	// Rows above the last written row were vacated by compaction.
	for y := 0; y <= write; y++ {
		for x := 1; x < f.width-1; x++ {
			f.cells[y*f.width+x] = CellEmpty
		}
	}

	return cleared
}
