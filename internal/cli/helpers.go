package cli

import (
	"fmt"
	"strings"

	gocube "github.com/SeamusWaldron/gocube_render"
	"github.com/SeamusWaldron/gocube_render/internal/facelets"
	"github.com/SeamusWaldron/gocube_render/internal/storage"
	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

// cubeOptions returns the options shared by every command.
func cubeOptions(extra ...gocube.Option) ([]gocube.Option, error) {
	opts := []gocube.Option{gocube.WithLogger(log)}
	if len(colorHex) > 0 {
		p, err := gocube.ParsePalette(colorHex)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gocube.WithColors(p))
	}
	return append(opts, extra...), nil
}

// newCube builds a cube of edge length n with the global options.
func newCube(n int, extra ...gocube.Option) (*gocube.Cube, error) {
	opts, err := cubeOptions(extra...)
	if err != nil {
		return nil, err
	}
	return gocube.New(n, opts...)
}

// openDB opens the database named by --db, or the default one.
func openDB() (*storage.DB, error) {
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}
	log.WithField("path", dbPath).Debug("opened database")
	return db, nil
}

// inputState is a facelet string together with where it came from.
type inputState struct {
	Facelets  string
	Dimension int
	Scramble  string
}

// resolveState reads the state a command works on. In order of
// preference: --moves, an @name or @id of a saved state, a facelet
// string argument, or a solved cube.
func resolveState(args []string) (inputState, error) {
	if moveText != "" {
		if dimension != 3 {
			return inputState{}, fmt.Errorf("--moves needs a 3x3 cube, got %d", dimension)
		}
		moves, err := notation.ParseAlgorithm(moveText)
		if err != nil {
			return inputState{}, err
		}
		return inputState{
			Facelets:  facelets.Scramble(moves).String(),
			Dimension: 3,
			Scramble:  notation.FormatMoves(notation.Simplify(moves)),
		}, nil
	}

	if len(args) > 0 && strings.HasPrefix(args[0], "@") {
		db, err := openDB()
		if err != nil {
			return inputState{}, err
		}
		defer db.Close()

		s, err := storage.NewStateRepository(db).Resolve(strings.TrimPrefix(args[0], "@"))
		if err != nil {
			return inputState{}, err
		}
		in := inputState{Facelets: s.Facelets, Dimension: s.Dimension}
		if s.Scramble != nil {
			in.Scramble = *s.Scramble
		}
		return in, nil
	}

	if len(args) > 0 {
		state := strings.ToUpper(strings.TrimSpace(args[0]))
		if err := gocube.ValidateFacelets(state, dimension); err != nil {
			return inputState{}, err
		}
		if size := 6 * dimension * dimension; len(state) > size {
			log.WithField("ignored", len(state)-size).Warn("facelet string longer than the cube, extra characters dropped")
			state = state[:size]
		}
		return inputState{Facelets: state, Dimension: dimension}, nil
	}

	return inputState{Facelets: solvedState(dimension), Dimension: dimension}, nil
}

// solvedState returns the facelet string of a solved cube of edge length n.
func solvedState(n int) string {
	var sb strings.Builder
	for _, f := range gocube.Faces {
		sb.WriteString(strings.Repeat(string(f), n*n))
	}
	return sb.String()
}

// cubeFor builds a cube showing in.
func cubeFor(in inputState, extra ...gocube.Option) (*gocube.Cube, error) {
	c, err := newCube(in.Dimension, extra...)
	if err != nil {
		return nil, err
	}
	if err := c.SetState(in.Facelets); err != nil {
		return nil, err
	}
	return c, nil
}

// stateSequence returns the 3x3 states reached from start by applying
// moves one at a time, starting with start itself.
func stateSequence(start string, moves []notation.Move) ([]string, error) {
	fc, err := facelets.Parse(start)
	if err != nil {
		return nil, err
	}
	states := make([]string, 0, len(moves)+1)
	states = append(states, fc.String())
	for _, m := range moves {
		fc.Apply(m)
		states = append(states, fc.String())
	}
	return states, nil
}
