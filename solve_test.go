package gocube

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

func TestSolveNormalizesTokens(t *testing.T) {
	var gotState string
	fake := SolverFunc(func(_ context.Context, facelets string) (string, error) {
		gotState = facelets
		return "R1 U3 F2", nil
	})

	state := scrambled3x3(t)
	c := mustNew(t, 3, WithSolver(fake))
	moves, err := c.Solve(context.Background(), state)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"R", "U'", "F2"}; !reflect.DeepEqual(moves, want) {
		t.Errorf("Solve() = %v, want %v", moves, want)
	}
	if gotState != state {
		t.Errorf("solver received %q", gotState)
	}

	current, _ := c.State()
	if current != solvedState {
		t.Error("Solve changed the cube's stickers")
	}
}

func TestSolveEmptySolution(t *testing.T) {
	fake := SolverFunc(func(context.Context, string) (string, error) {
		return "", nil
	})
	moves, err := Solve(context.Background(), fake, solvedState)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 0 {
		t.Errorf("Solve() = %v, want no moves", moves)
	}
}

func TestSolvePropagatesSolverError(t *testing.T) {
	boom := errors.New("invalid cube")
	fake := SolverFunc(func(context.Context, string) (string, error) {
		return "", boom
	})
	c := mustNew(t, 3, WithSolver(fake))
	_, err := c.Solve(context.Background(), "garbage")
	if err != boom {
		t.Errorf("error = %v, want the solver's error unchanged", err)
	}
}

func TestSolveRequires3x3(t *testing.T) {
	called := false
	fake := SolverFunc(func(context.Context, string) (string, error) {
		called = true
		return "", nil
	})
	for _, n := range []int{2, 4} {
		c := mustNew(t, n, WithSolver(fake))
		if _, err := c.Solve(context.Background(), solvedState); !errors.Is(err, ErrUnsupportedDimension) {
			t.Errorf("n=%d: error = %v, want ErrUnsupportedDimension", n, err)
		}
	}
	if called {
		t.Error("solver was called for a non-3x3 cube")
	}
}

func TestSolveMoves(t *testing.T) {
	fake := SolverFunc(func(context.Context, string) (string, error) {
		return "D3 L1 B2 U", nil
	})
	moves, err := SolveMoves(context.Background(), fake, solvedState)
	if err != nil {
		t.Fatal(err)
	}
	if got := notation.FormatMoves(moves); got != "D' L B2 U" {
		t.Errorf("SolveMoves() = %q", got)
	}
}
