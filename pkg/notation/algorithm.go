package notation

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Algorithm is a parsed move sequence. Groups may carry a repeat count:
//
//	R U R' U'
//	(R U R' U')6
//	F (R U R' U')2 F'
type Algorithm struct {
	Items []*Item `parser:"@@*"`
}

// Item is a single move or a parenthesised group.
type Item struct {
	Group *Group  `parser:"  @@"`
	Move  *string `parser:"| @Move"`
}

// Group is a parenthesised sub-algorithm with an optional repeat count.
type Group struct {
	Body   *Algorithm `parser:"'(' @@ ')'"`
	Repeat *int       `parser:"@Int?"`
}

var algorithmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Move", Pattern: "[URFDLB](?:2['`]|[123'`])?"},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `[\s,]+`},
})

var algorithmParser = participle.MustBuild[Algorithm](
	participle.Lexer(algorithmLexer),
	participle.Elide("Whitespace"),
)

// ParseAlgorithm parses an algorithm string and expands its groups.
func ParseAlgorithm(s string) ([]Move, error) {
	alg, err := algorithmParser.ParseString("algorithm", s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNotation, err)
	}
	return alg.Moves()
}

// Moves expands the algorithm into a flat move list.
func (a *Algorithm) Moves() ([]Move, error) {
	var moves []Move
	for _, item := range a.Items {
		switch {
		case item.Move != nil:
			m, err := ParseMove(*item.Move)
			if err != nil {
				return nil, err
			}
			moves = append(moves, m)
		case item.Group != nil:
			body, err := item.Group.Body.Moves()
			if err != nil {
				return nil, err
			}
			repeat := 1
			if item.Group.Repeat != nil {
				repeat = *item.Group.Repeat
			}
			for i := 0; i < repeat; i++ {
				moves = append(moves, body...)
			}
		}
	}
	return moves, nil
}
