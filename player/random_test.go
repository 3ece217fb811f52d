package player

import (
	"draughts/game"
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedMoves []game.Move

func (f fixedMoves) LegalMoves() []game.Move { return f }

func classic(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.Variant{
		BoardSize: 8,
		Direction: game.Diagonal,
		Players:   []game.Roster{{Quantity: 12}, {Quantity: 12}},
	}, game.WithSeed(3))
	require.NoError(t, err)
	return g
}

func TestSelectMoveEmpty(t *testing.T) {
	_, ok := NewRandom(1).SelectMove(fixedMoves(nil))
	require.False(t, ok)
}

func TestSelectMoveIsUniform(t *testing.T) {
	moves := fixedMoves{
		{From: game.Position{Row: 0, Col: 1}, To: game.Position{Row: 1, Col: 0}},
		{From: game.Position{Row: 0, Col: 1}, To: game.Position{Row: 1, Col: 2}},
		{From: game.Position{Row: 0, Col: 3}, To: game.Position{Row: 1, Col: 2}},
	}
	r := NewRandom(42)
	counts := map[string]int{}
	for range 3000 {
		m, ok := r.SelectMove(moves)
		require.True(t, ok)
		counts[m.String()]++
	}

	require.Len(t, counts, 3)
	for _, c := range counts {
		require.InDelta(t, 1000, c, 150)
	}
}

func TestSelectMoveIsDeterministicPerSeed(t *testing.T) {
	g := classic(t)
	a, _ := NewRandom(7).SelectMove(g)
	b, _ := NewRandom(7).SelectMove(g)
	require.Equal(t, a, b)
}

func TestPlayAppliesMove(t *testing.T) {
	g := classic(t)
	first := g.CurrentPlayer()

	move, ok := NewRandom(5).Play(g)

	require.True(t, ok)
	p, found := g.PieceAt(move.To)
	require.True(t, found)
	require.Equal(t, first, p.Owner)
	require.NotEqual(t, first, g.CurrentPlayer())
}

func TestPlayFinishedGame(t *testing.T) {
	g := classic(t)
	g.ForceEndGame()

	_, ok := NewRandom(5).Play(g)

	require.False(t, ok)
}
