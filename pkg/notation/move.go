// Package notation contains the face and move notation shared by the cube
// model, the solver adapter and the command-line tools.
package notation

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the notation package.
var (
	ErrInvalidNotation = errors.New("notation: invalid move notation")
	ErrInvalidFace     = errors.New("notation: invalid face identifier")
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// Faces lists the six faces in facelet-string order.
var Faces = [6]Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Index returns the position of the face in facelet-string order,
// or -1 if f is not a face.
func (f Face) Index() int {
	for i, face := range Faces {
		if face == f {
			return i
		}
	}
	return -1
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f.Index() >= 0
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	default:
		return f
	}
}

func (f Face) String() string {
	return string(f)
}

// ParseFace parses a single face letter.
func ParseFace(s string) (Face, error) {
	f := Face(strings.TrimSpace(s))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFace, s)
	}
	return f, nil
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Quarters returns the number of clockwise quarter turns: 1, 2 or 3.
func (t Turn) Quarters() int {
	switch t {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

// Move represents a single face turn.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // Direction and amount
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Raw returns the move in the solver's quarter-count grammar:
// R1 (clockwise), R2 (half turn), R3 (counter-clockwise).
func (m Move) Raw() string {
	return fmt.Sprintf("%s%d", m.Face, m.Turn.Quarters())
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single move token.
// Accepted forms: R, R', R2, R2' and the raw solver forms R1 and R3.
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	face := Face(strings.ToUpper(s[:1]))
	if !face.Valid() {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	// Default is clockwise
	turn := CW
	switch s[1:] {
	case "", "1":
	case "'", "`", "3":
		turn = CCW
	case "2", "2'", "2`":
		turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return Move{Face: face, Turn: turn}, nil
}

// NormalizeToken rewrites a raw solver token into standard notation:
// a trailing "3" becomes a prime and a trailing "1" is dropped.
func NormalizeToken(tok string) string {
	switch {
	case strings.HasSuffix(tok, "3"):
		return strings.TrimSuffix(tok, "3") + "'"
	case strings.HasSuffix(tok, "1"):
		return strings.TrimSuffix(tok, "1")
	default:
		return tok
	}
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the moves that undo the given sequence.
func Invert(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
