package facelets

import (
	"math/rand"

	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

var scrambleTurns = [3]notation.Turn{notation.CW, notation.CCW, notation.Double}

// RandomMoves returns length random moves. No two consecutive moves turn the
// same face, and a face is not turned again right after its opposite face
// if it was turned just before that (R L R).
func RandomMoves(rng *rand.Rand, length int) []notation.Move {
	moves := make([]notation.Move, 0, length)
	for len(moves) < length {
		face := notation.Faces[rng.Intn(len(notation.Faces))]
		if n := len(moves); n > 0 {
			last := moves[n-1].Face
			if face == last {
				continue
			}
			if n > 1 && face.Opposite() == last && moves[n-2].Face == face {
				continue
			}
		}
		moves = append(moves, notation.Move{Face: face, Turn: scrambleTurns[rng.Intn(len(scrambleTurns))]})
	}
	return moves
}

// Scramble applies moves to a solved cube and returns the result.
func Scramble(moves []notation.Move) *Cube {
	c := New()
	c.ApplyMoves(moves)
	return c
}
