package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_render/internal/render"
	"github.com/SeamusWaldron/gocube_render/internal/storage"
)

var stateListLimit int

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Manage saved states",
	Long:  `Commands for saving, listing and showing cube states. Saved states can be used by other commands as @name.`,
}

var stateSaveCmd = &cobra.Command{
	Use:   "save <name> [facelets]",
	Short: "Save a state",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runStateSave,
}

var stateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved states",
	Args:  cobra.NoArgs,
	RunE:  runStateList,
}

var stateShowCmd = &cobra.Command{
	Use:   "show <name|id>",
	Short: "Show a saved state and its solutions",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateShow,
}

var stateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved state and its solutions",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateDelete,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateSaveCmd)
	stateCmd.AddCommand(stateListCmd)
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateDeleteCmd)

	stateListCmd.Flags().IntVarP(&stateListLimit, "limit", "l", 20, "Number of states to show")
}

func runStateSave(cmd *cobra.Command, args []string) error {
	in, err := resolveState(args[1:])
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewStateRepository(db).Create(args[0], in.Dimension, in.Facelets, in.Scramble)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", args[0], id)
	return nil
}

func runStateList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	states, err := storage.NewStateRepository(db).List(stateListLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(states) == 0 {
		fmt.Fprintln(out, "No saved states.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-16s  %3s  %s\n", "ID", "NAME", "N", "CREATED")
	for _, s := range states {
		fmt.Fprintf(out, "%-36s  %-16s  %3d  %s\n", s.StateID, s.Name, s.Dimension, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runStateShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := storage.NewStateRepository(db).Resolve(args[0])
	if err != nil {
		return err
	}
	solutions, err := storage.NewSolutionRepository(db).GetByState(s.StateID)
	if err != nil {
		return err
	}

	c, err := cubeFor(inputState{Facelets: s.Facelets, Dimension: s.Dimension})
	if err != nil {
		return err
	}
	net, err := render.Net(c, render.NetOptions{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n\n", s.Name, s.StateID)
	fmt.Fprintln(out, net)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "State:    %s\n", s.Facelets)
	if s.Scramble != nil {
		fmt.Fprintf(out, "Scramble: %s\n", *s.Scramble)
	}
	for i, sol := range solutions {
		fmt.Fprintf(out, "Solution %d (%d moves): %s\n", i+1, len(sol.Moves), strings.Join(sol.Moves, " "))
	}
	return nil
}

func runStateDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewStateRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
