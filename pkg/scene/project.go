package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Camera is an orthographic camera looking down -Z after turning the
// scene by Yaw about Y and then Pitch about X.
type Camera struct {
	Yaw   float64
	Pitch float64
	Scale float64
}

// Polygon is a square projected onto the screen plane. Screen Y grows
// downward.
type Polygon struct {
	X, Y   [4]float64
	Depth  float64
	Fill   colorful.Color
	Stroke colorful.Color
	Width  float64
}

// View returns the rotation the camera applies to world points.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(c.Pitch).Mul4(mgl64.HomogRotate3DY(c.Yaw))
}

// Project returns the camera-facing squares of the subtree, ordered back
// to front so they can be painted in sequence.
func (c Camera) Project(root *Node) []Polygon {
	view := c.View()
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}

	var polys []Polygon
	for _, sq := range root.AllSquares() {
		normal := view.Mul4x1(sq.Normal.Vec4(0)).Vec3()
		if normal.Z() <= 1e-9 {
			continue
		}
		var p Polygon
		for i, pt := range sq.Points {
			v := view.Mul4x1(pt.Vec4(1)).Vec3()
			p.X[i] = v.X() * scale
			p.Y[i] = -v.Y() * scale
			p.Depth += v.Z() / 4
		}
		p.Fill = sq.Fill
		p.Stroke = sq.Stroke
		p.Width = sq.StrokeWidth
		polys = append(polys, p)
	}

	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth < polys[j].Depth
	})
	return polys
}
