package gocube

import (
	"errors"
	"testing"
)

func TestLayoutDefault3x3(t *testing.T) {
	want := map[Face][9][3]int{
		FaceU: {{2, 2, 2}, {2, 1, 2}, {2, 0, 2}, {1, 2, 2}, {1, 1, 2}, {1, 0, 2}, {0, 2, 2}, {0, 1, 2}, {0, 0, 2}},
		FaceR: {{0, 0, 2}, {1, 0, 2}, {2, 0, 2}, {0, 0, 1}, {1, 0, 1}, {2, 0, 1}, {0, 0, 0}, {1, 0, 0}, {2, 0, 0}},
		FaceF: {{0, 2, 2}, {0, 1, 2}, {0, 0, 2}, {0, 2, 1}, {0, 1, 1}, {0, 0, 1}, {0, 2, 0}, {0, 1, 0}, {0, 0, 0}},
		FaceD: {{0, 2, 0}, {0, 1, 0}, {0, 0, 0}, {1, 2, 0}, {1, 1, 0}, {1, 0, 0}, {2, 2, 0}, {2, 1, 0}, {2, 0, 0}},
		FaceL: {{2, 2, 2}, {1, 2, 2}, {0, 2, 2}, {2, 2, 1}, {1, 2, 1}, {0, 2, 1}, {2, 2, 0}, {1, 2, 0}, {0, 2, 0}},
		FaceB: {{2, 0, 2}, {2, 1, 2}, {2, 2, 2}, {2, 0, 1}, {2, 1, 1}, {2, 2, 1}, {2, 0, 0}, {2, 1, 0}, {2, 2, 0}},
	}

	conv := DefaultConvention()
	for _, face := range Faces {
		layout, err := conv.Layout(face, 3)
		if err != nil {
			t.Fatalf("Layout(%s): %v", face, err)
		}
		if len(layout.Cells) != 9 {
			t.Fatalf("Layout(%s) has %d cells", face, len(layout.Cells))
		}
		for k, cell := range layout.Cells {
			if cell.Pos != want[face][k] {
				t.Errorf("%s[%d] = %v, want %v", face, k, cell.Pos, want[face][k])
			}
		}
	}
}

func TestLayoutNativeGridIndices(t *testing.T) {
	conv := DefaultConvention()
	for _, face := range Faces {
		layout, err := conv.Layout(face, 4)
		if err != nil {
			t.Fatal(err)
		}
		rowAxis, colAxis := freeAxes(layout.Slice.Axis)
		seen := make(map[[2]int]bool)
		for _, cell := range layout.Cells {
			if cell.Pos[layout.Slice.Axis] != layout.Slice.Index {
				t.Errorf("%s: cell %v is off the face layer", face, cell.Pos)
			}
			if cell.Row != cell.Pos[rowAxis] || cell.Col != cell.Pos[colAxis] {
				t.Errorf("%s: cell %v has row/col %d/%d", face, cell.Pos, cell.Row, cell.Col)
			}
			seen[[2]int{cell.Row, cell.Col}] = true
		}
		if len(seen) != 16 {
			t.Errorf("%s: layout covers %d of 16 cells", face, len(seen))
		}
	}
}

func TestSliceTable(t *testing.T) {
	want := map[Face]Slice{
		FaceF: {Axis: 0, Index: 0},
		FaceB: {Axis: 0, Index: 4},
		FaceU: {Axis: 2, Index: 4},
		FaceD: {Axis: 2, Index: 0},
		FaceL: {Axis: 1, Index: 4},
		FaceR: {Axis: 1, Index: 0},
	}
	conv := DefaultConvention()
	for face, w := range want {
		got, err := conv.Slice(face, 5)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("Slice(%s) = %+v, want %+v", face, got, w)
		}
	}

	if _, err := conv.Slice(Face("X"), 3); !errors.Is(err, ErrInvalidFace) {
		t.Errorf("Slice(X) error = %v, want ErrInvalidFace", err)
	}
}
