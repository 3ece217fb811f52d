package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoPlayers(size int, mode DirectionMode, mandatory bool) Variant {
	return Variant{
		BoardSize: size,
		Direction: mode,
		Players: []Roster{
			{Name: "pawn", Color: "white", Quantity: 0},
			{Name: "pawn", Color: "black", Quantity: 0},
		},
		MandatoryCapture: mandatory,
	}
}

func solitaire(size int, mode DirectionMode) Variant {
	return Variant{
		BoardSize: size,
		Direction: mode,
		Players:   []Roster{{Name: "peg", Color: "red", Quantity: 0}},
	}
}

func man(owner, row, col int) Placement {
	return Placement{Owner: owner, Rank: Man, Pos: Position{Row: row, Col: col}}
}

func king(owner, row, col int) Placement {
	return Placement{Owner: owner, Rank: King, Pos: Position{Row: row, Col: col}}
}

func at(row, col int) Position {
	return Position{Row: row, Col: col}
}

func newLayoutGame(t *testing.T, v Variant, layout ...Placement) *Game {
	t.Helper()
	g, err := NewGame(v, WithSeed(1), WithLayout(layout))
	require.NoError(t, err)
	return g
}

func idAt(t *testing.T, g *Game, row, col int) PieceID {
	t.Helper()
	p, ok := g.PieceAt(at(row, col))
	require.True(t, ok, "expected a piece at (%d,%d)", row, col)
	return p.ID
}

func simpleOnly(moves []Move) []Move {
	var simple []Move
	for _, m := range moves {
		if !m.IsCapture() {
			simple = append(simple, m)
		}
	}
	return simple
}
