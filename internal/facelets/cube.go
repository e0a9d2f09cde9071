// Package facelets provides a 3x3 sticker model that applies face turns to
// a facelet string.
package facelets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

// ErrInvalidFacelets is returned when a facelet string cannot be parsed.
var ErrInvalidFacelets = errors.New("facelets: invalid facelet string")

// Face indexes a face in facelet-string order.
type Face int

const (
	U Face = 0 // Up
	R Face = 1 // Right
	F Face = 2 // Front
	D Face = 3 // Down
	L Face = 4 // Left
	B Face = 5 // Back
)

func (f Face) String() string {
	if f < U || f > B {
		return "?"
	}
	return string(notation.Faces[f])
}

// Cube is a 3x3 cube in sticker form.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// read from outside the cube, U with B at the top, D with F at the top and
// the side faces with U at the top. A facelet holds the face whose color it
// carries.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Face
}

// New creates a solved cube.
func New() *Cube {
	c := &Cube{}
	for face := U; face <= B; face++ {
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = face
		}
	}
	return c
}

// Parse reads a 54-character facelet string.
func Parse(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("%w: need 54 characters, got %d", ErrInvalidFacelets, len(s))
	}
	c := &Cube{}
	for i := 0; i < 54; i++ {
		idx := notation.Face(s[i : i+1]).Index()
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidFacelets, s[i], i)
		}
		c.Facelets[i/9][i%9] = Face(idx)
	}
	return c, nil
}

// String returns the 54-character facelet string.
func (c *Cube) String() string {
	var sb strings.Builder
	sb.Grow(54)
	for face := U; face <= B; face++ {
		for i := 0; i < 9; i++ {
			sb.WriteString(c.Facelets[face][i].String())
		}
	}
	return sb.String()
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	for face := U; face <= B; face++ {
		center := c.Facelets[face][4]
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != center {
				return false
			}
		}
	}
	return true
}

// Apply applies a move to the cube.
func (c *Cube) Apply(m notation.Move) {
	face := Face(m.Face.Index())
	if face < U {
		return
	}
	for i := 0; i < m.Turn.Quarters(); i++ {
		c.moveCW(face)
	}
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []notation.Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// moveCW applies a clockwise quarter turn.
func (c *Cube) moveCW(face Face) {
	c.rotateFaceCW(face)
	c.cycleEdgesCW(face)
}

// rotateFaceCW rotates a face's own stickers 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// cycleEdgesCW cycles the stickers of the four neighbouring faces.
func (c *Cube) cycleEdgesCW(face Face) {
	switch face {
	case U:
		// U carries the top rows F -> L -> B -> R
		c.cycle4(F, []int{0, 1, 2}, L, []int{0, 1, 2}, B, []int{0, 1, 2}, R, []int{0, 1, 2})
	case D:
		// D carries the bottom rows F -> R -> B -> L
		c.cycle4(F, []int{6, 7, 8}, R, []int{6, 7, 8}, B, []int{6, 7, 8}, L, []int{6, 7, 8})
	case F:
		// F affects U bottom, R left, D top, L right
		c.cycle4(U, []int{6, 7, 8}, R, []int{0, 3, 6}, D, []int{2, 1, 0}, L, []int{8, 5, 2})
	case B:
		// B affects U top, L left, D bottom, R right
		c.cycle4(U, []int{2, 1, 0}, L, []int{0, 3, 6}, D, []int{6, 7, 8}, R, []int{8, 5, 2})
	case R:
		// R affects U right, B left, D right, F right
		c.cycle4(U, []int{2, 5, 8}, B, []int{6, 3, 0}, D, []int{2, 5, 8}, F, []int{2, 5, 8})
	case L:
		// L affects U left, F left, D left, B right
		c.cycle4(U, []int{0, 3, 6}, F, []int{0, 3, 6}, D, []int{0, 3, 6}, B, []int{8, 5, 2})
	}
}

// cycle4 moves the stickers of strip 1 to strip 2, 2 to 3, 3 to 4 and 4 to 1.
func (c *Cube) cycle4(f1 Face, i1 []int, f2 Face, i2 []int, f3 Face, i3 []int, f4 Face, i4 []int) {
	// Save first strip
	t := [3]Face{
		c.Facelets[f1][i1[0]],
		c.Facelets[f1][i1[1]],
		c.Facelets[f1][i1[2]],
	}

	for k := 0; k < 3; k++ {
		// 1 <- 4
		c.Facelets[f1][i1[k]] = c.Facelets[f4][i4[k]]
		// 4 <- 3
		c.Facelets[f4][i4[k]] = c.Facelets[f3][i3[k]]
		// 3 <- 2
		c.Facelets[f3][i3[k]] = c.Facelets[f2][i2[k]]
		// 2 <- 1 (saved)
		c.Facelets[f2][i2[k]] = t[k]
	}
}

// Net returns a text net of the cube:
//
//	      U
//	L F R B
//	      D
func (c *Cube) Net() string {
	var sb strings.Builder

	row := func(face Face, r int) {
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Facelets[face][r*3+col].String() + " ")
		}
	}

	for r := 0; r < 3; r++ {
		sb.WriteString("      ")
		row(U, r)
		sb.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []Face{L, F, R, B} {
			row(face, r)
		}
		sb.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		sb.WriteString("      ")
		row(D, r)
		sb.WriteString("\n")
	}
	return sb.String()
}
