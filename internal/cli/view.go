package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_render/internal/viewer"
	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

var viewSolve bool

var viewCmd = &cobra.Command{
	Use:   "view [facelets|@state]",
	Short: "Show a cube in a window",
	Long: `Open a window showing the cube in 3D. Turn it with the arrow keys or by
dragging with the mouse; R resets the view and Q closes the window.

With --solve, the 3x3 state is solved first and N and P step through
the solution.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewSolve, "solve", false, "Step through a solution with N and P")
}

func runView(cmd *cobra.Command, args []string) error {
	in, err := resolveState(args)
	if err != nil {
		return err
	}
	c, err := cubeFor(in)
	if err != nil {
		return err
	}

	var states []string
	if viewSolve {
		tokens, err := solveState(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to solve: %w", err)
		}
		moves, err := notation.ParseMoves(strings.Join(tokens, " "))
		if err != nil {
			return err
		}
		if states, err = stateSequence(in.Facelets, moves); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Solution: %s\n", notation.FormatMoves(moves))
	}

	title := fmt.Sprintf("gocube-render %dx%dx%d", in.Dimension, in.Dimension, in.Dimension)
	return viewer.New(c, states, log).Run(title)
}
