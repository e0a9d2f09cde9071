// Package gocube models an N×N×N Rubik's cube as a scene graph of cubies
// and lays facelet strings onto its stickers.
//
// # Quick Start
//
//	cube, err := gocube.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Color the stickers from a facelet string (U, R, F, D, L, B blocks).
//	err = cube.SetState("UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB")
//
//	// Read one face back, in the same reading order.
//	colors, _ := cube.Stickers(gocube.FaceF)
//
//	// The scene node can be handed to a renderer.
//	root := cube.Node()
//
// # Geometry
//
// Each cubie sits at an integer grid coordinate (x, y, z). A square of a
// cubie is colored when it lies on the outer layer in its direction; the
// Convention decides which direction belongs to which face. With the
// default convention F is the x=0 layer, B x=N-1, R y=0, L y=N-1, D z=0
// and U z=N-1. After the grid is built it is centered on the origin and
// turned so that F faces the viewer (+Z) with U on top (+Y).
//
// # Facelet Strings
//
// A facelet string holds 6·N² letters from {U, R, F, D, L, B}, grouped by
// face in U, R, F, D, L, B order. Within a face the letters are read row
// by row as the face is seen from outside: U with B at the top, D with F
// at the top, and the four side faces with U at the top. For N=3 this is
// the standard two-phase solver input.
//
// # Solving
//
// Cube.Solve hands a 3×3 facelet string to a Solver and returns moves in
// standard notation. The bundled solver runs a two-phase search.
package gocube
