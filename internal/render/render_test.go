package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	gocube "github.com/SeamusWaldron/gocube_render"
	"github.com/SeamusWaldron/gocube_render/pkg/scene"
)

func plainNet(t *testing.T, c *gocube.Cube) []string {
	t.Helper()
	out, err := Net(c, NetOptions{Letters: true, Renderer: lipgloss.NewRenderer(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(out, "\n")
}

func TestNetSolved(t *testing.T) {
	c, err := gocube.New(3)
	if err != nil {
		t.Fatal(err)
	}
	lines := plainNet(t, c)
	want := []string{
		"      U U U ",
		"      U U U ",
		"      U U U ",
		"L L L F F F R R R B B B ",
		"L L L F F F R R R B B B ",
		"L L L F F F R R R B B B ",
		"      D D D ",
		"      D D D ",
		"      D D D ",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestNetFollowsState(t *testing.T) {
	c, err := gocube.New(2)
	if err != nil {
		t.Fatal(err)
	}
	// One distinct letter in the top-left of each face.
	if err := c.SetState("RUUU" + "FRRR" + "DFFF" + "LDDD" + "BLLL" + "UBBB"); err != nil {
		t.Fatal(err)
	}
	lines := plainNet(t, c)
	if lines[0] != "    R U " {
		t.Errorf("U row = %q", lines[0])
	}
	if lines[2] != "B L D F F R U B " {
		t.Errorf("middle row = %q", lines[2])
	}
	if lines[4] != "    L D " {
		t.Errorf("D row = %q", lines[4])
	}
}

func TestSVGStraightOn(t *testing.T) {
	c, err := gocube.New(3)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := SVG(&buf, c, SVGOptions{Size: 300, Camera: scene.Camera{}, Background: "#202020"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// Every cubie shows exactly one square toward the camera.
	if got := strings.Count(out, "<polygon"); got != 27 {
		t.Errorf("got %d polygons, want 27", got)
	}
	if !strings.Contains(out, "fill:#009b48") {
		t.Error("front face color missing")
	}
	if strings.Contains(out, "fill:#ffffff") {
		t.Error("U face should not be visible straight on")
	}
}

func TestSVGDefaultCameraShowsThreeFaces(t *testing.T) {
	c, err := gocube.New(2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := SVG(&buf, c, SVGOptions{Camera: DefaultCamera}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, hex := range []string{"#ffffff", "#009b48", "#b90000"} {
		if !strings.Contains(out, "fill:"+hex) {
			t.Errorf("missing %s", hex)
		}
	}
	for _, hex := range []string{"#ffd500", "#ff5900", "#0045ad"} {
		if strings.Contains(out, "fill:"+hex) {
			t.Errorf("hidden face color %s drawn", hex)
		}
	}
}
