// gocube-render - CLI for rendering and solving Rubik's cubes.
package main

import (
	"github.com/SeamusWaldron/gocube_render/internal/cli"
)

func main() {
	cli.Execute()
}
