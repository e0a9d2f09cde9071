// Package render draws cubes as terminal nets and SVG images.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	gocube "github.com/SeamusWaldron/gocube_render"
)

// NetOptions controls how a net is drawn.
type NetOptions struct {
	// Letters prints the face letter in each cell.
	Letters bool
	// Renderer is used for the cell styles. Defaults to lipgloss's default
	// renderer.
	Renderer *lipgloss.Renderer
}

// Net draws the cube unfolded: U on top, then L, F, R and B side by side,
// then D. Each sticker is a two-column cell.
func Net(c *gocube.Cube, opts NetOptions) (string, error) {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	n := c.Dimension()
	blocks := make(map[gocube.Face][]string, 6)
	for _, face := range gocube.Faces {
		colors, err := c.Stickers(face)
		if err != nil {
			return "", err
		}
		rows := make([]string, n)
		for i := 0; i < n; i++ {
			var sb strings.Builder
			for j := 0; j < n; j++ {
				sb.WriteString(cell(r, c.Palette(), colors[i*n+j], opts.Letters))
			}
			rows[i] = sb.String()
		}
		blocks[face] = rows
	}

	indent := strings.Repeat(" ", 2*n)
	var lines []string
	for _, row := range blocks[gocube.FaceU] {
		lines = append(lines, indent+row)
	}
	for i := 0; i < n; i++ {
		lines = append(lines, blocks[gocube.FaceL][i]+blocks[gocube.FaceF][i]+blocks[gocube.FaceR][i]+blocks[gocube.FaceB][i])
	}
	for _, row := range blocks[gocube.FaceD] {
		lines = append(lines, indent+row)
	}
	return strings.Join(lines, "\n"), nil
}

func cell(r *lipgloss.Renderer, p gocube.Palette, col colorful.Color, letters bool) string {
	text := "  "
	if letters {
		if f, ok := p.FaceOf(col); ok {
			text = string(f) + " "
		} else {
			text = "? "
		}
	}

	fg := lipgloss.Color("#000000")
	if l, _, _ := col.Lab(); l < 0.6 {
		fg = lipgloss.Color("#FFFFFF")
	}
	return r.NewStyle().
		Background(lipgloss.Color(col.Hex())).
		Foreground(fg).
		Render(text)
}
