package gocube

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/SeamusWaldron/gocube_render/pkg/scene"
)

// Cubie is one unit cube of the grid. It owns a scene node holding six
// squares, one per direction. Squares on the outside of the cube carry the
// color of their face; the others are filled with the hidden color.
type Cubie struct {
	position [3]int
	dim      int
	conv     *Convention

	exterior [6]bool
	squares  [6]*scene.Square
	node     *scene.Node
}

// exteriorDirections returns the directions in which a cubie at pos lies on
// the outer layer of a cube of edge length n.
func exteriorDirections(n int, pos [3]int) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if pos[d.Axis()] == d.Bound(n) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func newCubie(x, y, z int, cfg *config) *Cubie {
	n := cfg.dimension
	c := &Cubie{
		position: [3]int{x, y, z},
		dim:      n,
		conv:     &cfg.convention,
		node:     scene.NewNode(fmt.Sprintf("cubie(%d,%d,%d)", x, y, z)),
	}

	for _, d := range exteriorDirections(n, c.position) {
		c.exterior[d] = true
	}

	black := colorful.Color{}
	for _, d := range Directions {
		sq := scene.NewSquare(cfg.cubieSize)
		sq.SetStroke(black, 3)
		if c.exterior[d] {
			col, _ := cfg.palette.Color(cfg.convention.FaceOf(d))
			sq.SetFill(col, 1)
		} else {
			sq.SetFill(cfg.hidden, 1)
		}
		sq.FaceDirection(d.Vec())

		c.squares[d] = sq
		c.node.AddSquare(sq)
	}
	return c
}

// Position returns the cubie's grid coordinate.
func (c *Cubie) Position() [3]int {
	return c.position
}

// Face returns the square facing the direction of logical face f.
func (c *Cubie) Face(f Face) (*scene.Square, error) {
	d, err := c.conv.Direction(f)
	if err != nil {
		return nil, err
	}
	return c.squares[d], nil
}

// Square returns the square facing d.
func (c *Cubie) Square(d Direction) *scene.Square {
	return c.squares[d]
}

// Exterior reports whether the square facing d is on the outside of the cube.
func (c *Cubie) Exterior(d Direction) bool {
	return c.exterior[d]
}

// ColoredFaces returns how many of the cubie's squares are on the outside:
// 3 for corners, 2 for edges, 1 for face centers and 0 inside.
func (c *Cubie) ColoredFaces() int {
	count := 0
	for _, ext := range c.exterior {
		if ext {
			count++
		}
	}
	return count
}

// Sticker returns the current fill of the square facing face f.
func (c *Cubie) Sticker(f Face) (colorful.Color, error) {
	sq, err := c.Face(f)
	if err != nil {
		return colorful.Color{}, err
	}
	return sq.Fill, nil
}

// Node returns the cubie's scene node.
func (c *Cubie) Node() *scene.Node {
	return c.node
}

// Center returns the cubie's current center, rounded to 3 decimals.
func (c *Cubie) Center() mgl64.Vec3 {
	ctr := c.node.Center()
	for i := range ctr {
		ctr[i] = math.Round(ctr[i]*1000) / 1000
		if ctr[i] == 0 {
			ctr[i] = 0 // drop negative zero
		}
	}
	return ctr
}

func (c *Cubie) String() string {
	ctr := c.Center()
	return fmt.Sprintf("Cubie(%g, %g, %g)", ctr.X(), ctr.Y(), ctr.Z())
}
