// Package viewer shows a cube in a window that can be turned with the
// arrow keys or by dragging with the mouse.
package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	gocube "github.com/SeamusWaldron/gocube_render"
	"github.com/SeamusWaldron/gocube_render/internal/render"
	"github.com/SeamusWaldron/gocube_render/pkg/scene"
)

const (
	screenSize = 640
	turnStep   = 0.03
	dragScale  = 0.01
)

// Game is an ebiten game drawing one cube. When it has a list of facelet
// states, N and P step forward and back through them.
type Game struct {
	cube   *gocube.Cube
	states []string
	index  int
	cam    scene.Camera
	log    logrus.FieldLogger

	white   *ebiten.Image
	dragged bool
	lastX   int
	lastY   int
}

// New creates a viewer for c. states may be empty.
func New(c *gocube.Cube, states []string, log logrus.FieldLogger) *Game {
	g := &Game{
		cube:   c,
		states: states,
		cam:    render.DefaultCamera,
		log:    log.WithField("component", "viewer"),
	}
	g.cam.Scale = render.FitScale(c.Node(), screenSize)
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run(title string) error {
	if len(g.states) > 0 {
		if err := g.cube.SetState(g.states[0]); err != nil {
			return err
		}
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.cam.Yaw += turnStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.cam.Yaw -= turnStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.cam.Pitch += turnStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.cam.Pitch -= turnStep
	}
	g.cam.Pitch = clamp(g.cam.Pitch, -math.Pi/2, math.Pi/2)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.cam.Yaw, g.cam.Pitch = render.DefaultCamera.Yaw, render.DefaultCamera.Pitch
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.step(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragged = true
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragged = false
	}
	if g.dragged {
		g.cam.Yaw += float64(x-g.lastX) * dragScale
		g.cam.Pitch = clamp(g.cam.Pitch+float64(y-g.lastY)*dragScale, -math.Pi/2, math.Pi/2)
		g.lastX, g.lastY = x, y
	}
	return nil
}

func (g *Game) step(delta int) {
	next := g.index + delta
	if next < 0 || next >= len(g.states) {
		return
	}
	if err := g.cube.SetState(g.states[next]); err != nil {
		g.log.WithError(err).Warn("skipping state")
		return
	}
	g.index = next
	g.log.WithField("step", g.index).Debug("showing state")
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.white == nil {
		g.white = ebiten.NewImage(3, 3)
		g.white.Fill(color.White)
	}
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff})

	half := float32(screenSize) / 2
	for _, p := range g.cam.Project(g.cube.Node()) {
		var xs, ys [4]float32
		for i := range p.X {
			xs[i] = half + float32(p.X[i])
			ys[i] = half + float32(p.Y[i])
		}
		g.fillQuad(screen, xs, ys, p.Fill)
		stroke := toRGBA(p.Stroke)
		for i := range xs {
			j := (i + 1) % len(xs)
			vector.StrokeLine(screen, xs[i], ys[i], xs[j], ys[j], float32(p.Width), stroke, true)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func (g *Game) fillQuad(screen *ebiten.Image, xs, ys [4]float32, fill colorful.Color) {
	r, gr, b := fill.Clamped().RGB255()
	vertices := make([]ebiten.Vertex, len(xs))
	for i := range xs {
		vertices[i] = ebiten.Vertex{
			DstX:   xs[i],
			DstY:   ys[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 255,
			ColorG: float32(gr) / 255,
			ColorB: float32(b) / 255,
			ColorA: 1,
		}
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillAll
	screen.DrawTriangles(vertices, indices, g.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), op)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
