package tetris

import "testing"

func TestRotateIdentity(t *testing.T) {
	// At rotation 0 the transform is plain row-major indexing.
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			want := py*4 + px
			if got := Rotate(px, py, 0); got != want {
				t.Errorf("Rotate(%d, %d, 0) = %d, expected %d", px, py, got, want)
			}
		}
	}
}

func TestRotateClosedForms(t *testing.T) {
	tests := []struct {
		name       string
		px, py, r  int
		wantIndex  int
	}{
		{"90 degrees", 1, 0, 1, 8},
		{"180 degrees", 1, 0, 2, 14},
		{"270 degrees", 1, 0, 3, 7},
		{"full turn wraps", 1, 0, 4, 1},
		{"large rotation reduces mod 4", 1, 0, 6, 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Rotate(tc.px, tc.py, tc.r); got != tc.wantIndex {
				t.Errorf("Rotate(%d, %d, %d) = %d, expected %d", tc.px, tc.py, tc.r, got, tc.wantIndex)
			}
		})
	}
}

func TestRotateNegativeRotation(t *testing.T) {
	// Negative rotation states normalize into 0..3.
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			if Rotate(px, py, -3) != Rotate(px, py, 1) {
				t.Errorf("Rotate(%d, %d, -3) should equal Rotate(%d, %d, 1)", px, py, px, py)
			}
			if Rotate(px, py, -4) != Rotate(px, py, 0) {
				t.Errorf("Rotate(%d, %d, -4) should equal Rotate(%d, %d, 0)", px, py, px, py)
			}
		}
	}
}

func TestRotateBijection(t *testing.T) {
	// For each fixed rotation, every local cell maps to a distinct index.
	for r := 0; r < 4; r++ {
		seen := make(map[int]bool, 16)
		for py := 0; py < 4; py++ {
			for px := 0; px < 4; px++ {
				idx := Rotate(px, py, r)
				if idx < 0 || idx >= 16 {
					t.Fatalf("Rotate(%d, %d, %d) = %d, out of range", px, py, r, idx)
				}
				if seen[idx] {
					t.Errorf("Rotate(..., %d) maps two cells to index %d", r, idx)
				}
				seen[idx] = true
			}
		}
		if len(seen) != 16 {
			t.Errorf("rotation %d covers %d indices, expected 16", r, len(seen))
		}
	}
}

func TestShapesHaveFourBlocks(t *testing.T) {
	for shape := 0; shape < NumShapes; shape++ {
		count := 0
		for _, b := range shapes[shape] {
			if b != 0 {
				count++
			}
		}
		if count != 4 {
			t.Errorf("shape %s has %d blocks, expected 4", ShapeName(shape), count)
		}
	}
}

func TestShapeOccupiedRotationPreservesBlocks(t *testing.T) {
	// Rotating never changes the number of occupied cells.
	for shape := 0; shape < NumShapes; shape++ {
		for r := 0; r < 4; r++ {
			count := 0
			for py := 0; py < 4; py++ {
				for px := 0; px < 4; px++ {
					if ShapeOccupied(shape, r, px, py) {
						count++
					}
				}
			}
			if count != 4 {
				t.Errorf("shape %s rotation %d has %d blocks, expected 4", ShapeName(shape), r, count)
			}
		}
	}
}

func TestShapeNames(t *testing.T) {
	if ShapeName(ShapeI) != "I" {
		t.Errorf("ShapeName(ShapeI) = %s, expected I", ShapeName(ShapeI))
	}
	if ShapeName(ShapeZ) != "Z" {
		t.Errorf("ShapeName(ShapeZ) = %s, expected Z", ShapeName(ShapeZ))
	}
	if ShapeName(-1) != "?" || ShapeName(NumShapes) != "?" {
		t.Error("out-of-range shape indices should name as ?")
	}
}
