package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_render"
	"github.com/SeamusWaldron/gocube_render/internal/storage"
	"github.com/SeamusWaldron/gocube_render/internal/twophase"
)

var (
	solveTimeout   time.Duration
	solveMaxLength int
	solveSave      string
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelets|@state]",
	Short: "Solve a 3x3 state",
	Long: `Find a solution for a 3x3 facelet string with a two-phase search and
print it in standard notation.

Use --save to store the state and its solution.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Give up after this long")
	solveCmd.Flags().IntVar(&solveMaxLength, "max-length", 24, "Longest solution to search for")
	solveCmd.Flags().StringVar(&solveSave, "save", "", "Save the state and solution under this name")
}

// solveState solves in with the two-phase solver and the command's limits.
func solveState(ctx context.Context, in inputState) ([]string, error) {
	solver := twophase.New(
		twophase.WithTimeout(solveTimeout),
		twophase.WithMaxLength(solveMaxLength),
		twophase.WithLogger(log),
	)
	c, err := newCube(in.Dimension, gocube.WithSolver(solver))
	if err != nil {
		return nil, err
	}
	return c.Solve(ctx, in.Facelets)
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := resolveState(args)
	if err != nil {
		return err
	}

	start := time.Now()
	moves, err := solveState(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(moves) == 0 {
		fmt.Fprintln(out, "Already solved.")
	} else {
		fmt.Fprintln(out, strings.Join(moves, " "))
	}
	fmt.Fprintf(out, "Moves: %d  Time: %s\n", len(moves), time.Since(start).Round(time.Millisecond))

	if solveSave == "" {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stateID, _, err := storage.NewSolutionRepository(db).SaveSolved(solveSave, in.Dimension, in.Facelets, in.Scramble, moves)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved: %s (%s)\n", solveSave, stateID)
	return nil
}
