// Package twophase adapts the two-phase search of github.com/unixpickle/gocube
// to facelet strings in U, R, F, D, L, B order.
package twophase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/unixpickle/gocube"

	"github.com/SeamusWaldron/gocube_render/internal/facelets"
	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

// Sentinel errors for the twophase package.
var (
	ErrInvalidFacelets = errors.New("twophase: invalid facelet string")
	ErrUnsolvable      = errors.New("twophase: cube state is not solvable")
	ErrNoSolution      = errors.New("twophase: no solution found")
	ErrWrongSolution   = errors.New("twophase: solution does not solve the state")
)

// Solved is the facelet string of a solved cube.
const Solved = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// stickerFace maps a face letter to the face number used by the search
// library: top, bottom, front, back, right, left = 1..6.
var stickerFace = map[byte]int{
	'U': 1,
	'D': 2,
	'F': 3,
	'B': 4,
	'R': 5,
	'L': 6,
}

// Option configures a Solver.
type Option func(*Solver)

// WithMaxLength bounds the solution length searched for.
func WithMaxLength(n int) Option {
	return func(s *Solver) {
		s.maxLength = n
	}
}

// WithTimeout bounds the search time when the context has no deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Solver) {
		s.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Solver) {
		s.log = l
	}
}

// Solver runs a two-phase search and reports the first solution found.
type Solver struct {
	maxLength int
	timeout   time.Duration
	log       logrus.FieldLogger
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		maxLength: 24,
		timeout:   30 * time.Second,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks the length, the alphabet, the distinct centers and that
// every letter appears nine times.
func Validate(facelets string) error {
	if len(facelets) != 54 {
		return fmt.Errorf("%w: need 54 characters, got %d", ErrInvalidFacelets, len(facelets))
	}

	counts := make(map[byte]int, 6)
	for i := 0; i < len(facelets); i++ {
		ch := facelets[i]
		if _, ok := stickerFace[ch]; !ok {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidFacelets, ch, i)
		}
		counts[ch]++
	}
	for i, f := range notation.Faces {
		if facelets[i*9+4] != f[0] {
			return fmt.Errorf("%w: center of %s is %c", ErrInvalidFacelets, f, facelets[i*9+4])
		}
		if counts[f[0]] != 9 {
			return fmt.Errorf("%w: %d stickers of %s", ErrInvalidFacelets, counts[f[0]], f)
		}
	}
	return nil
}

// StickerCube converts a validated facelet string into the search
// library's sticker layout. Both layouts read every face row by row from
// outside with the same top edge, so only the face order changes.
func StickerCube(facelets string) gocube.StickerCube {
	var sc gocube.StickerCube
	for i, f := range notation.Faces {
		dst := stickerFace[f[0]] - 1
		for j := 0; j < 9; j++ {
			sc[dst*9+j] = stickerFace[facelets[i*9+j]]
		}
	}
	return sc
}

// Solve returns a solution in the quarter-count grammar, e.g. "R1 U3 F2".
// A solved cube yields an empty string.
func (s *Solver) Solve(ctx context.Context, state string) (string, error) {
	if err := Validate(state); err != nil {
		return "", err
	}
	if state == Solved {
		return "", nil
	}

	stickers := StickerCube(state)
	cc, err := stickers.CubieCube()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsolvable, err)
	}

	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	search := gocube.NewSolver(*cc, s.maxLength)
	defer search.Stop()

	select {
	case solution, ok := <-search.Solutions():
		if !ok {
			return "", ErrNoSolution
		}
		moves, err := convert(solution)
		if err != nil {
			return "", err
		}
		if err := check(state, moves); err != nil {
			return "", err
		}
		s.log.WithFields(logrus.Fields{
			"moves":   len(solution),
			"elapsed": time.Since(start).String(),
		}).Debug("two-phase search found a solution")
		return formatRaw(moves), nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrNoSolution, ctx.Err())
		}
		return "", ctx.Err()
	}
}

func convert(solution []gocube.Move) ([]notation.Move, error) {
	moves := make([]notation.Move, len(solution))
	for i, m := range solution {
		mv, err := notation.ParseMove(m.String())
		if err != nil {
			return nil, err
		}
		moves[i] = mv
	}
	return moves, nil
}

// check replays moves on state in the facelet model.
func check(state string, moves []notation.Move) error {
	c, err := facelets.Parse(state)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFacelets, err)
	}
	c.ApplyMoves(moves)
	if !c.IsSolved() {
		return fmt.Errorf("%w: %s leaves %s", ErrWrongSolution, notation.FormatMoves(moves), c)
	}
	return nil
}

func formatRaw(moves []notation.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Raw()
	}
	return strings.Join(parts, " ")
}
