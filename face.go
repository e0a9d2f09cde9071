package gocube

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

// Face is a logical cube face letter.
type Face = notation.Face

const (
	FaceU = notation.FaceU // Up
	FaceR = notation.FaceR // Right
	FaceF = notation.FaceF // Front
	FaceD = notation.FaceD // Down
	FaceL = notation.FaceL // Left
	FaceB = notation.FaceB // Back
)

// Faces lists the faces in facelet-string order: U, R, F, D, L, B.
var Faces = notation.Faces

// Direction is one of the six outward axis directions of a cubie.
type Direction int

const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// Directions lists all six directions.
var Directions = [6]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}

// Axis returns 0, 1 or 2 for X, Y or Z.
func (d Direction) Axis() int {
	return int(d) / 2
}

// Positive reports whether d points along the positive half of its axis.
func (d Direction) Positive() bool {
	return int(d)%2 == 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	if d.Positive() {
		return d + 1
	}
	return d - 1
}

// Vec returns the unit vector for d.
func (d Direction) Vec() mgl64.Vec3 {
	var v mgl64.Vec3
	if d.Positive() {
		v[d.Axis()] = 1
	} else {
		v[d.Axis()] = -1
	}
	return v
}

// Bound returns the grid coordinate of the layer that faces d in a cube of
// edge length n: 0 for negative directions, n-1 for positive ones.
func (d Direction) Bound(n int) int {
	if d.Positive() {
		return n - 1
	}
	return 0
}

func (d Direction) String() string {
	sign := "-"
	if d.Positive() {
		sign = "+"
	}
	return sign + string("XYZ"[d.Axis()])
}

// Rotation is a rotation by Angle radians about Axis through the origin.
type Rotation struct {
	Axis  mgl64.Vec3
	Angle float64
}

// Convention ties the logical faces to grid directions and says how the
// finished cube is turned so that F faces the viewer (+Z) with U on top (+Y).
type Convention struct {
	// Axes[i] is the direction of Faces[i].
	Axes [6]Direction
	// Reorient is applied in order, once, after the grid is centered.
	Reorient []Rotation
}

// DefaultConvention places F at x=0, B at x=N-1, R at y=0, L at y=N-1,
// D at z=0 and U at z=N-1, then turns the cube a quarter about Z and a
// quarter back about X.
func DefaultConvention() Convention {
	return Convention{
		Axes: [6]Direction{
			PosZ, // U
			NegY, // R
			NegX, // F
			NegZ, // D
			PosY, // L
			PosX, // B
		},
		Reorient: []Rotation{
			{Axis: mgl64.Vec3{0, 0, 1}, Angle: math.Pi / 2},
			{Axis: mgl64.Vec3{1, 0, 0}, Angle: -math.Pi / 2},
		},
	}
}

// Direction returns the direction assigned to face f.
func (c Convention) Direction(f Face) (Direction, error) {
	i := f.Index()
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFace, string(f))
	}
	return c.Axes[i], nil
}

// FaceOf returns the face assigned to direction d.
func (c Convention) FaceOf(d Direction) Face {
	for i, dir := range c.Axes {
		if dir == d {
			return Faces[i]
		}
	}
	return ""
}

// Orientation returns the combined re-orientation matrix.
func (c Convention) Orientation() mgl64.Mat4 {
	m := mgl64.Ident4()
	for _, r := range c.Reorient {
		m = mgl64.HomogRotate3D(r.Angle, r.Axis.Normalize()).Mul4(m)
	}
	return m
}

// Validate checks that the axes form a bijection with opposite faces on
// opposite directions, and that the re-orientation brings F to the viewer
// with U on top.
func (c Convention) Validate() error {
	var seen [6]bool
	for _, d := range c.Axes {
		if d < PosX || d > NegZ || seen[d] {
			return fmt.Errorf("%w: axes are not a bijection", ErrInvalidConvention)
		}
		seen[d] = true
	}

	for i, f := range Faces {
		if c.Axes[f.Opposite().Index()] != c.Axes[i].Opposite() {
			return fmt.Errorf("%w: %s and %s are not opposite", ErrInvalidConvention, f, f.Opposite())
		}
	}

	m := c.Orientation()
	front := m.Mul4x1(c.Axes[FaceF.Index()].Vec().Vec4(0)).Vec3()
	up := m.Mul4x1(c.Axes[FaceU.Index()].Vec().Vec4(0)).Vec3()
	if !closeTo(front, mgl64.Vec3{0, 0, 1}, 1e-6) {
		return fmt.Errorf("%w: F ends up facing %v", ErrInvalidConvention, front)
	}
	if !closeTo(up, mgl64.Vec3{0, 1, 0}, 1e-6) {
		return fmt.Errorf("%w: U ends up facing %v", ErrInvalidConvention, up)
	}
	return nil
}

// closeTo reports whether a and b are within eps of each other. The
// comparison is absolute so that components near zero behave.
func closeTo(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}
