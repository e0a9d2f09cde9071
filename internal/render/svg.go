package render

import (
	"bytes"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	gocube "github.com/SeamusWaldron/gocube_render"
	"github.com/SeamusWaldron/gocube_render/pkg/scene"
)

// DefaultCamera looks at the cube from above and to the right so that the
// U, F and R faces are visible.
var DefaultCamera = scene.Camera{Yaw: -math.Pi / 6, Pitch: math.Pi / 6}

// SVGOptions controls SVG output.
type SVGOptions struct {
	Size       int
	Camera     scene.Camera
	Background string
}

// SVG writes the cube as a size×size SVG image. When the camera has no
// scale, the cube is fitted to the canvas.
func SVG(w io.Writer, c *gocube.Cube, opts SVGOptions) error {
	size := opts.Size
	if size <= 0 {
		size = 400
	}
	cam := opts.Camera
	if cam.Scale == 0 {
		cam.Scale = FitScale(c.Node(), size)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(size, size)
	if opts.Background != "" {
		canvas.Rect(0, 0, size, size, "fill:"+opts.Background)
	}

	half := float64(size) / 2
	for _, p := range cam.Project(c.Node()) {
		xs := make([]int, len(p.X))
		ys := make([]int, len(p.Y))
		for i := range p.X {
			xs[i] = int(math.Round(half + p.X[i]))
			ys[i] = int(math.Round(half + p.Y[i]))
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g;stroke-linejoin:round",
			p.Fill.Hex(), p.Stroke.Hex(), p.Width))
	}
	canvas.End()

	_, err := buf.WriteTo(w)
	return err
}

// FitScale returns the scale that keeps every point of the scene inside
// a canvas of the given size under any rotation.
func FitScale(root *scene.Node, size int) float64 {
	radius := 0.0
	for _, sq := range root.AllSquares() {
		for _, pt := range sq.Points {
			radius = math.Max(radius, pt.Len())
		}
	}
	if radius == 0 {
		return 1
	}
	return 0.45 * float64(size) / radius
}
