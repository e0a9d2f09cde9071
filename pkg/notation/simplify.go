package notation

// Simplify merges adjacent turns of the same face and drops turns that
// cancel out: "R R" becomes "R2", "R R'" disappears and "R2 R" becomes "R'".
// The result has the same effect on the cube as the input.
func Simplify(moves []Move) []Move {
	result := make([]Move, 0, len(moves))

	for _, move := range moves {
		if len(result) == 0 || result[len(result)-1].Face != move.Face {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		switch (last.Turn.Quarters() + move.Turn.Quarters()) % 4 {
		case 0:
			// Full cancellation; the move before may now merge too
			result = result[:len(result)-1]
		case 1:
			last.Turn = CW
		case 2:
			last.Turn = Double
		case 3:
			last.Turn = CCW
		}
	}

	return result
}
