package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_render/internal/render"
)

var showLetters bool

var showCmd = &cobra.Command{
	Use:   "show [facelets|@state]",
	Short: "Print a cube as a colored net",
	Long: `Print the cube unfolded in the terminal: U on top, then L, F, R and B,
then D. Without a state, a solved cube is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVarP(&showLetters, "letters", "l", false, "Print face letters in the cells")
}

func runShow(cmd *cobra.Command, args []string) error {
	in, err := resolveState(args)
	if err != nil {
		return err
	}
	c, err := cubeFor(in)
	if err != nil {
		return err
	}

	net, err := render.Net(c, render.NetOptions{Letters: showLetters})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), net)
	if in.Scramble != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nScramble: %s\n", in.Scramble)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "State:    %s\n", in.Facelets)
	return nil
}
