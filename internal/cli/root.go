// Package cli implements the command-line interface for gocube-render.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	verbose   bool
	dimension int
	colorHex  []string
	moveText  string
)

var log = logrus.StandardLogger()

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-render",
	Short: "Render and solve Rubik's cubes",
	Long: `gocube-render - Build N×N×N cubes from facelet strings, draw them as
terminal nets, SVG images or in a window, and solve 3×3 states.

A state is given as a facelet string: six blocks of N×N letters in
U, R, F, D, L, B order. Use --moves to start from a scrambled cube
instead, or @name to load a saved state.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.gocube_render/states.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVarP(&dimension, "dim", "n", 3, "Cube edge length")
	rootCmd.PersistentFlags().StringSliceVar(&colorHex, "colors", nil, "Six hex colors for U,R,F,D,L,B")
	rootCmd.PersistentFlags().StringVarP(&moveText, "moves", "m", "", "Start from a solved 3x3 scrambled by these moves")
}
