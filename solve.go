package gocube

import (
	"context"
	"strings"

	"github.com/SeamusWaldron/gocube_render/internal/twophase"
	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

// Solver finds a solution for a 54-character facelet string. The returned
// text is a whitespace-separated list of tokens in the quarter-count
// grammar: a face letter followed by 1 (clockwise), 2 (half turn) or
// 3 (counter-clockwise). A bare face letter is a clockwise turn.
type Solver interface {
	Solve(ctx context.Context, facelets string) (string, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, facelets string) (string, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, facelets string) (string, error) {
	return f(ctx, facelets)
}

// Solve runs the solver and rewrites its output into standard notation
// tokens such as "R", "U'" and "F2". Solver errors are returned as they are.
func Solve(ctx context.Context, s Solver, state string) ([]string, error) {
	raw, err := s.Solve(ctx, state)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(raw)
	moves := make([]string, len(fields))
	for i, tok := range fields {
		moves[i] = notation.NormalizeToken(tok)
	}
	return moves, nil
}

// SolveMoves is like Solve but returns parsed moves.
func SolveMoves(ctx context.Context, s Solver, state string) ([]notation.Move, error) {
	tokens, err := Solve(ctx, s, state)
	if err != nil {
		return nil, err
	}
	return notation.ParseMoves(strings.Join(tokens, " "))
}

// Solve solves a 3×3 facelet string with the cube's solver. It does not
// look at or change the cube's stickers.
func (c *Cube) Solve(ctx context.Context, state string) ([]string, error) {
	if c.cfg.dimension != 3 {
		return nil, ErrUnsupportedDimension
	}
	return Solve(ctx, c.solver(), state)
}

func (c *Cube) solver() Solver {
	if c.cfg.solver == nil {
		c.cfg.solver = twophase.New(twophase.WithLogger(c.cfg.logger))
	}
	return c.cfg.solver
}
