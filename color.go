package gocube

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds one color per face, in facelet order U, R, F, D, L, B.
type Palette [6]colorful.Color

// Default sticker colors.
var (
	defaultPaletteHex = [6]string{"#FFFFFF", "#B90000", "#009B48", "#FFD500", "#FF5900", "#0045AD"}
	defaultHiddenHex  = "#000000"
)

// DefaultPalette returns white, red, green, yellow, orange and blue for
// U, R, F, D, L and B.
func DefaultPalette() Palette {
	p, _ := ParsePalette(defaultPaletteHex[:])
	return p
}

// DefaultHiddenColor is the fill of interior faces.
func DefaultHiddenColor() colorful.Color {
	c, _ := colorful.Hex(defaultHiddenHex)
	return c
}

// ParsePalette parses six hex colors in U, R, F, D, L, B order.
func ParsePalette(hexes []string) (Palette, error) {
	var p Palette
	if len(hexes) != 6 {
		return p, fmt.Errorf("%w: need 6 colors, got %d", ErrInvalidPalette, len(hexes))
	}
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return p, fmt.Errorf("%w: %s: %v", ErrInvalidPalette, h, err)
		}
		p[i] = c
	}
	return p, nil
}

// Color returns the color of face f.
func (p Palette) Color(f Face) (colorful.Color, error) {
	i := f.Index()
	if i < 0 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidFace, string(f))
	}
	return p[i], nil
}

// FaceOf returns the face whose color matches c.
func (p Palette) FaceOf(c colorful.Color) (Face, bool) {
	for i, pc := range p {
		if pc.Hex() == c.Hex() {
			return Faces[i], true
		}
	}
	return "", false
}

// Distinct reports whether all six colors differ.
func (p Palette) Distinct() bool {
	seen := make(map[string]bool, len(p))
	for _, c := range p {
		if seen[c.Hex()] {
			return false
		}
		seen[c.Hex()] = true
	}
	return true
}

// Hex returns the palette as hex strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}
