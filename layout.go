package gocube

import "fmt"

// readingFrame gives, for each face, the neighbour at the top edge and the
// neighbour at the right edge when the face is seen from outside the cube.
// This is the sticker order of the standard facelet string.
var readingFrame = map[Face][2]Face{
	FaceU: {FaceB, FaceR},
	FaceR: {FaceU, FaceB},
	FaceF: {FaceU, FaceR},
	FaceD: {FaceF, FaceR},
	FaceL: {FaceU, FaceF},
	FaceB: {FaceU, FaceL},
}

// Slice selects the layer of the grid that touches a face: every cubie
// whose coordinate on Axis equals Index.
type Slice struct {
	Axis  int
	Index int
}

// Cell addresses one sticker of a face.
type Cell struct {
	// Row and Col locate the cubie in the face's native grid, whose rows
	// and columns follow the two free axes in x, y, z order.
	Row, Col int
	// Pos is the cubie's grid coordinate.
	Pos [3]int
}

// FaceLayout is the precomputed reading order of one face: Cells[k] is the
// sticker that receives character k of that face's block in the facelet
// string.
type FaceLayout struct {
	Face  Face
	N     int
	Slice Slice
	Cells []Cell
}

// Slice returns the grid layer touching face f in a cube of edge length n.
func (c Convention) Slice(f Face, n int) (Slice, error) {
	d, err := c.Direction(f)
	if err != nil {
		return Slice{}, err
	}
	return Slice{Axis: d.Axis(), Index: d.Bound(n)}, nil
}

// Layout builds the reading-order table for face f.
func (c Convention) Layout(f Face, n int) (FaceLayout, error) {
	slice, err := c.Slice(f, n)
	if err != nil {
		return FaceLayout{}, err
	}
	frame := readingFrame[f]
	top, _ := c.Direction(frame[0])
	right, _ := c.Direction(frame[1])
	if top.Axis() == slice.Axis || right.Axis() == slice.Axis || top.Axis() == right.Axis() {
		return FaceLayout{}, fmt.Errorf("%w: degenerate frame for %s", ErrInvalidConvention, f)
	}

	rowAxis, colAxis := freeAxes(slice.Axis)

	layout := FaceLayout{Face: f, N: n, Slice: slice, Cells: make([]Cell, 0, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var pos [3]int
			pos[slice.Axis] = slice.Index

			// Rows run away from the top neighbour.
			if top.Positive() {
				pos[top.Axis()] = n - 1 - i
			} else {
				pos[top.Axis()] = i
			}

			// Columns run toward the right neighbour.
			if right.Positive() {
				pos[right.Axis()] = j
			} else {
				pos[right.Axis()] = n - 1 - j
			}

			layout.Cells = append(layout.Cells, Cell{
				Row: pos[rowAxis],
				Col: pos[colAxis],
				Pos: pos,
			})
		}
	}
	return layout, nil
}

// freeAxes returns the two axes other than fixed, in ascending order.
func freeAxes(fixed int) (int, int) {
	switch fixed {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
