// Package scene is a small retained scene graph: nodes own child nodes and
// filled square polygons, and every transform is applied to the points of
// the whole subtree at once.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Canonical axis directions.
var (
	Right = mgl64.Vec3{1, 0, 0}
	Left  = mgl64.Vec3{-1, 0, 0}
	Up    = mgl64.Vec3{0, 1, 0}
	Down  = mgl64.Vec3{0, -1, 0}
	Out   = mgl64.Vec3{0, 0, 1}
	In    = mgl64.Vec3{0, 0, -1}
)

// Node is a scene graph node.
type Node struct {
	Name     string
	children []*Node
	squares  []*Square
	parent   *Node
}

// NewNode creates an empty node.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Add attaches child nodes. A child already attached elsewhere is moved.
func (n *Node) Add(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.Remove(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// Remove detaches a child node.
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// AddSquare attaches a square to this node.
func (n *Node) AddSquare(sq *Square) {
	n.squares = append(n.squares, sq)
}

// Children returns the direct child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Squares returns the squares attached directly to this node.
func (n *Node) Squares() []*Square {
	return n.squares
}

// Traverse visits n and all of its descendants depth first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Traverse(fn)
	}
}

// Find returns the first node in the subtree with the given name.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// AllSquares returns every square in the subtree.
func (n *Node) AllSquares() []*Square {
	var out []*Square
	n.Traverse(func(node *Node) {
		out = append(out, node.squares...)
	})
	return out
}

// ApplyMatrix transforms every point of the subtree by m.
func (n *Node) ApplyMatrix(m mgl64.Mat4) {
	n.Traverse(func(node *Node) {
		for _, sq := range node.squares {
			sq.ApplyMatrix(m)
		}
	})
}

// Shift translates the subtree by v.
func (n *Node) Shift(v mgl64.Vec3) {
	n.ApplyMatrix(mgl64.Translate3D(v.X(), v.Y(), v.Z()))
}

// Rotate rotates the subtree by angle radians about axis through the origin.
func (n *Node) Rotate(angle float64, axis mgl64.Vec3) {
	n.ApplyMatrix(mgl64.HomogRotate3D(angle, axis.Normalize()))
}

// RotateAbout rotates the subtree by angle radians about axis through point.
func (n *Node) RotateAbout(angle float64, axis, point mgl64.Vec3) {
	m := mgl64.Translate3D(point.X(), point.Y(), point.Z()).
		Mul4(mgl64.HomogRotate3D(angle, axis.Normalize())).
		Mul4(mgl64.Translate3D(-point.X(), -point.Y(), -point.Z()))
	n.ApplyMatrix(m)
}

// Center returns the center of the bounding box of all points in the subtree.
func (n *Node) Center() mgl64.Vec3 {
	squares := n.AllSquares()
	if len(squares) == 0 {
		return mgl64.Vec3{}
	}
	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, sq := range squares {
		for _, p := range sq.Points {
			for i := 0; i < 3; i++ {
				lo[i] = math.Min(lo[i], p[i])
				hi[i] = math.Max(hi[i], p[i])
			}
		}
	}
	return lo.Add(hi).Mul(0.5)
}

// Square is a filled square polygon with an outward normal.
type Square struct {
	Points      [4]mgl64.Vec3
	Normal      mgl64.Vec3
	Fill        colorful.Color
	FillOpacity float64
	Stroke      colorful.Color
	StrokeWidth float64
}

// NewSquare creates a square of the given side length centered on the
// origin in the XY plane, facing Out.
func NewSquare(side float64) *Square {
	h := side / 2
	return &Square{
		Points: [4]mgl64.Vec3{
			{-h, -h, 0},
			{h, -h, 0},
			{h, h, 0},
			{-h, h, 0},
		},
		Normal:      Out,
		FillOpacity: 1,
		StrokeWidth: 3,
	}
}

// SetFill sets the fill color and opacity.
func (s *Square) SetFill(c colorful.Color, opacity float64) {
	s.Fill = c
	s.FillOpacity = opacity
}

// SetStroke sets the outline color and width.
func (s *Square) SetStroke(c colorful.Color, width float64) {
	s.Stroke = c
	s.StrokeWidth = width
}

// FaceDirection pushes a fresh square half its side length out of the
// origin and turns it so that its normal points along dir. This is how a
// unit cube's six faces are built from one template square.
func (s *Square) FaceDirection(dir mgl64.Vec3) {
	side := s.Points[1].Sub(s.Points[0]).Len()
	s.ApplyMatrix(mgl64.Translate3D(0, 0, side/2))
	q := mgl64.QuatBetweenVectors(Out, dir.Normalize())
	s.ApplyMatrix(q.Mat4())
}

// ApplyMatrix transforms the square's points and normal by m.
func (s *Square) ApplyMatrix(m mgl64.Mat4) {
	for i, p := range s.Points {
		s.Points[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	s.Normal = m.Mul4x1(s.Normal.Vec4(0)).Vec3().Normalize()
}

// Center returns the centroid of the square.
func (s *Square) Center() mgl64.Vec3 {
	var c mgl64.Vec3
	for _, p := range s.Points {
		c = c.Add(p)
	}
	return c.Mul(0.25)
}
