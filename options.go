package gocube

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
)

// Option configures a Cube.
type Option func(*config)

type config struct {
	dimension  int
	palette    Palette
	hidden     colorful.Color
	cubieSize  float64
	convention Convention
	solver     Solver
	logger     logrus.FieldLogger
}

func defaultConfig() *config {
	return &config{
		palette:    DefaultPalette(),
		hidden:     DefaultHiddenColor(),
		cubieSize:  1.0,
		convention: DefaultConvention(),
		logger:     logrus.StandardLogger(),
	}
}

// WithColors sets the sticker colors, in U, R, F, D, L, B order.
func WithColors(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithHiddenColor sets the fill used for interior faces.
func WithHiddenColor(col colorful.Color) Option {
	return func(c *config) {
		c.hidden = col
	}
}

// WithCubieSize sets the edge length of one cubie. Defaults to 1.
func WithCubieSize(size float64) Option {
	return func(c *config) {
		c.cubieSize = size
	}
}

// WithConvention replaces the face/axis convention.
// The convention is validated by New.
func WithConvention(conv Convention) Option {
	return func(c *config) {
		c.convention = conv
	}
}

// WithSolver sets the solver used by Cube.Solve.
// When unset, the bundled two-phase solver is used.
func WithSolver(s Solver) Option {
	return func(c *config) {
		c.solver = s
	}
}

// WithLogger sets the logger. Defaults to the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}
