package gocube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/gocube_render/pkg/scene"
)

// Cube is an N×N×N grid of cubies together with the scene node that
// renders it. Grid coordinates run from 0 to N-1 on each axis.
//
// A Cube is not safe for concurrent use.
type Cube struct {
	cfg    *config
	cubies [][][]*Cubie
	node   *scene.Node
	log    logrus.FieldLogger
}

// New builds a cube of edge length dim. The grid is generated, centered on
// the origin and turned so that the front face looks at the viewer.
func New(dim int, opts ...Option) (*Cube, error) {
	if dim < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dim)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.dimension = dim

	if err := cfg.convention.Validate(); err != nil {
		return nil, err
	}
	if cfg.cubieSize <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidCubieSize, cfg.cubieSize)
	}

	c := &Cube{
		cfg:  cfg,
		node: scene.NewNode("cube"),
		log:  cfg.logger.WithField("component", "cube"),
	}
	c.generateCubies()

	// Center around the origin
	half := -cfg.cubieSize * float64(dim-1) / 2
	c.node.Shift(mgl64.Vec3{half, half, half})

	// Turn so that F faces the viewer and U is on top
	for _, r := range cfg.convention.Reorient {
		c.node.Rotate(r.Angle, r.Axis)
	}

	c.log.WithFields(logrus.Fields{
		"dimension": dim,
		"cubies":    dim * dim * dim,
	}).Debug("generated cube")

	return c, nil
}

func (c *Cube) generateCubies() {
	n := c.cfg.dimension
	c.cubies = make([][][]*Cubie, n)
	for x := 0; x < n; x++ {
		c.cubies[x] = make([][]*Cubie, n)
		for y := 0; y < n; y++ {
			c.cubies[x][y] = make([]*Cubie, n)
			for z := 0; z < n; z++ {
				cubie := newCubie(x, y, z, c.cfg)
				cubie.node.Shift(mgl64.Vec3{float64(x), float64(y), float64(z)}.Mul(c.cfg.cubieSize))
				c.node.Add(cubie.node)
				c.cubies[x][y][z] = cubie
			}
		}
	}
}

// Dimension returns the edge length N.
func (c *Cube) Dimension() int {
	return c.cfg.dimension
}

// Palette returns the face colors.
func (c *Cube) Palette() Palette {
	return c.cfg.palette
}

// Convention returns the face/axis convention in use.
func (c *Cube) Convention() Convention {
	return c.cfg.convention
}

// Node returns the root scene node of the cube.
func (c *Cube) Node() *scene.Node {
	return c.node
}

// Cubie returns the cubie at (x, y, z), or nil if out of range.
func (c *Cube) Cubie(x, y, z int) *Cubie {
	n := c.cfg.dimension
	if x < 0 || y < 0 || z < 0 || x >= n || y >= n || z >= n {
		return nil
	}
	return c.cubies[x][y][z]
}

// Cubies returns all cubies in x, y, z order.
func (c *Cube) Cubies() []*Cubie {
	n := c.cfg.dimension
	out := make([]*Cubie, 0, n*n*n)
	for x := range c.cubies {
		for y := range c.cubies[x] {
			out = append(out, c.cubies[x][y]...)
		}
	}
	return out
}

// FaceSlice returns the grid layer that touches face f.
func (c *Cube) FaceSlice(f Face) (Slice, error) {
	return c.cfg.convention.Slice(f, c.cfg.dimension)
}

// FaceGrid returns the N×N cubies touching face f in the face's native
// layout: rows and columns follow the two free axes in x, y, z order.
func (c *Cube) FaceGrid(f Face) ([][]*Cubie, error) {
	slice, err := c.FaceSlice(f)
	if err != nil {
		return nil, err
	}

	n := c.cfg.dimension
	rowAxis, colAxis := freeAxes(slice.Axis)
	grid := make([][]*Cubie, n)
	for r := 0; r < n; r++ {
		grid[r] = make([]*Cubie, n)
		for col := 0; col < n; col++ {
			var pos [3]int
			pos[slice.Axis] = slice.Index
			pos[rowAxis] = r
			pos[colAxis] = col
			grid[r][col] = c.cubies[pos[0]][pos[1]][pos[2]]
		}
	}
	return grid, nil
}

// Face returns the cubies touching face f, flattened row by row from
// FaceGrid.
func (c *Cube) Face(f Face) ([]*Cubie, error) {
	grid, err := c.FaceGrid(f)
	if err != nil {
		return nil, err
	}
	out := make([]*Cubie, 0, len(grid)*len(grid))
	for _, row := range grid {
		out = append(out, row...)
	}
	return out, nil
}

// ValidateFacelets checks that s holds at least 6·n² characters and that
// each of them is a face letter.
func ValidateFacelets(s string, n int) error {
	need := 6 * n * n
	if len(s) < need {
		return fmt.Errorf("%w: need %d characters, got %d", ErrStateLength, need, len(s))
	}
	for i := 0; i < need; i++ {
		if !Face(s[i : i+1]).Valid() {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidState, s[i], i)
		}
	}
	return nil
}

// SetState recolors the stickers from a facelet string: six blocks of N²
// letters in U, R, F, D, L, B order, each block read row by row as the
// face is seen from outside. The string is checked before anything is
// changed; characters past 6·N² are ignored.
func (c *Cube) SetState(facelets string) error {
	n := c.cfg.dimension
	if err := ValidateFacelets(facelets, n); err != nil {
		return err
	}
	need := 6 * n * n
	if extra := len(facelets) - need; extra > 0 {
		c.log.WithField("ignored", extra).Warn("facelet string longer than the cube; trailing characters ignored")
	}

	pos := 0
	for _, face := range Faces {
		layout, err := c.cfg.convention.Layout(face, n)
		if err != nil {
			return err
		}
		for _, cell := range layout.Cells {
			col, _ := c.cfg.palette.Color(Face(facelets[pos : pos+1]))
			pos++
			sq, _ := c.cubies[cell.Pos[0]][cell.Pos[1]][cell.Pos[2]].Face(face)
			sq.SetFill(col, 1)
		}
	}

	c.log.WithField("facelets", need).Debug("applied state")
	return nil
}

// Stickers returns the colors of face f in facelet reading order.
func (c *Cube) Stickers(f Face) ([]colorful.Color, error) {
	layout, err := c.cfg.convention.Layout(f, c.cfg.dimension)
	if err != nil {
		return nil, err
	}
	out := make([]colorful.Color, len(layout.Cells))
	for i, cell := range layout.Cells {
		sq, _ := c.cubies[cell.Pos[0]][cell.Pos[1]][cell.Pos[2]].Face(f)
		out[i] = sq.Fill
	}
	return out, nil
}

// State reads the stickers back into a facelet string.
func (c *Cube) State() (string, error) {
	if !c.cfg.palette.Distinct() {
		return "", ErrAmbiguousPalette
	}

	n := c.cfg.dimension
	buf := make([]byte, 0, 6*n*n)
	for _, face := range Faces {
		colors, err := c.Stickers(face)
		if err != nil {
			return "", err
		}
		for _, col := range colors {
			f, ok := c.cfg.palette.FaceOf(col)
			if !ok {
				return "", fmt.Errorf("%w: sticker color %s is not in the palette", ErrInvalidState, col.Hex())
			}
			buf = append(buf, f[0])
		}
	}
	return string(buf), nil
}
