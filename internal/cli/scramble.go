package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_render/internal/facelets"
	"github.com/SeamusWaldron/gocube_render/internal/render"
	"github.com/SeamusWaldron/gocube_render/internal/storage"
	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

var (
	scrambleLength int
	scrambleSeed   int64
	scrambleSave   string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random 3x3 scramble",
	Long: `Generate a random move sequence, apply it to a solved 3x3 cube and print
the scramble, the resulting facelet string and its net.

Use --save to store the state for later use as @name.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "l", 20, "Number of moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (default: current time)")
	scrambleCmd.Flags().StringVar(&scrambleSave, "save", "", "Save the scrambled state under this name")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := facelets.RandomMoves(rng, scrambleLength)
	in := inputState{
		Facelets:  facelets.Scramble(moves).String(),
		Dimension: 3,
		Scramble:  notation.FormatMoves(moves),
	}

	c, err := cubeFor(in)
	if err != nil {
		return err
	}
	net, err := render.Net(c, render.NetOptions{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, net)
	fmt.Fprintf(out, "\nScramble: %s\n", in.Scramble)
	fmt.Fprintf(out, "State:    %s\n", in.Facelets)

	if scrambleSave == "" {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewStateRepository(db).Create(scrambleSave, 3, in.Facelets, in.Scramble)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved:    %s (%s)\n", scrambleSave, id)
	return nil
}
