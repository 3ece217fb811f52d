package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMovesOptionalCapture(t *testing.T) {
	g := newLayoutGame(t, twoPlayers(4, Diagonal, false), man(0, 1, 1), man(1, 2, 2), man(1, 3, 1))
	victim := idAt(t, g, 2, 2)

	moves := g.LegalMoves()

	require.Contains(t, moves, Move{From: at(1, 1), To: at(3, 3), Captured: []PieceID{victim}},
		"Capture should be offered")
	require.Contains(t, moves, Move{From: at(1, 1), To: at(2, 0)},
		"Simple move should be offered when capture is optional")
	require.Len(t, moves, 2)
}

func TestLegalMovesMandatoryCapture(t *testing.T) {
	t.Run("capture suppresses every simple move", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(4, Diagonal, true), man(0, 1, 1), man(1, 2, 2), man(1, 3, 1))
		victim := idAt(t, g, 2, 2)

		moves := g.LegalMoves()

		require.Equal(t, []Move{{From: at(1, 1), To: at(3, 3), Captured: []PieceID{victim}}}, moves)
	})

	t.Run("pieces without captures contribute nothing", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, true),
			man(0, 0, 5), man(0, 2, 1), man(1, 3, 2), man(1, 7, 0))

		moves := g.LegalMoves()

		require.NotEmpty(t, moves)
		require.Empty(t, simpleOnly(moves), "Only captures when one is available")
		for _, m := range moves {
			require.Equal(t, at(2, 1), m.From, "Only the capturing piece should move")
		}
	})

	t.Run("simple moves return when nobody can capture", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, true), man(0, 2, 1), man(1, 5, 4))

		moves := g.LegalMoves()

		require.ElementsMatch(t, []Move{
			{From: at(2, 1), To: at(3, 0)},
			{From: at(2, 1), To: at(3, 2)},
		}, moves)
	})
}

func TestLegalMovesOnlyForSideToMove(t *testing.T) {
	g := newLayoutGame(t, twoPlayers(8, Diagonal, false), man(0, 2, 1), man(1, 5, 4))

	for _, m := range g.LegalMoves() {
		require.Equal(t, at(2, 1), m.From)
	}
}

func TestManCaptures(t *testing.T) {
	t.Run("chain reports every intermediate landing from the true origin", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, true), man(0, 2, 1), man(1, 3, 2), man(1, 5, 4))
		first, second := idAt(t, g, 3, 2), idAt(t, g, 5, 4)

		moves := g.LegalMoves()

		require.ElementsMatch(t, []Move{
			{From: at(2, 1), To: at(4, 3), Captured: []PieceID{first}},
			{From: at(2, 1), To: at(6, 5), Captured: []PieceID{first, second}},
		}, moves)
	})

	t.Run("men never capture backwards", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, false), man(0, 4, 3), man(1, 3, 2))

		for _, m := range g.LegalMoves() {
			require.False(t, m.IsCapture(), "Unexpected backward capture %s", m)
		}
	})

	t.Run("landing must be empty", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, false), man(0, 2, 1), man(1, 3, 2), man(1, 4, 3))

		for _, m := range g.LegalMoves() {
			require.False(t, m.IsCapture())
		}
	})

	t.Run("own pieces are never captured", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, false), man(0, 2, 1), man(0, 3, 2), man(1, 7, 0))

		for _, m := range g.LegalMoves() {
			require.False(t, m.IsCapture())
		}
	})

	t.Run("orthogonal men capture sideways", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(6, Orthogonal, true), man(0, 2, 1), man(1, 2, 2))
		victim := idAt(t, g, 2, 2)

		require.Equal(t, []Move{{From: at(2, 1), To: at(2, 3), Captured: []PieceID{victim}}}, g.LegalMoves())
	})
}

func TestKingMoves(t *testing.T) {
	t.Run("slides to every empty cell along each line", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, false), king(0, 3, 3), man(1, 7, 0))

		moves := g.LegalMoves()

		require.Len(t, moves, 13)
		require.Contains(t, moves, Move{From: at(3, 3), To: at(0, 0)})
		require.Contains(t, moves, Move{From: at(3, 3), To: at(7, 7)})
	})

	t.Run("slide stops before an occupied cell", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, false), king(0, 0, 0), man(0, 3, 3), man(1, 7, 0))

		var along []Move
		for _, m := range g.LegalMoves() {
			if m.From == at(0, 0) {
				along = append(along, m)
			}
		}
		require.ElementsMatch(t, []Move{
			{From: at(0, 0), To: at(1, 1)},
			{From: at(0, 0), To: at(2, 2)},
		}, along)
	})

	t.Run("captures at a distance and lands immediately beyond", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, true), king(0, 0, 0), man(1, 3, 3))
		victim := idAt(t, g, 3, 3)

		require.Equal(t, []Move{{From: at(0, 0), To: at(4, 4), Captured: []PieceID{victim}}}, g.LegalMoves())
	})

	t.Run("adjacent enemies shield each other", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, false), king(0, 0, 0), man(1, 2, 2), man(1, 3, 3))

		for _, m := range g.LegalMoves() {
			require.False(t, m.IsCapture(), "Unexpected capture %s", m)
		}
	})

	t.Run("second enemy past a gap is capturable", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, true), king(0, 0, 0), man(1, 2, 2), man(1, 4, 4))
		near, far := idAt(t, g, 2, 2), idAt(t, g, 4, 4)

		moves := g.LegalMoves()

		require.Contains(t, moves, Move{From: at(0, 0), To: at(3, 3), Captured: []PieceID{near}})
		require.Contains(t, moves, Move{From: at(0, 0), To: at(5, 5), Captured: []PieceID{near, far}})
		require.Contains(t, moves, Move{From: at(0, 0), To: at(5, 5), Captured: []PieceID{far}})
	})

	t.Run("own piece ends the line", func(t *testing.T) {
		g := newLayoutGame(t, twoPlayers(8, Diagonal, false), king(0, 0, 0), man(0, 1, 1), man(1, 3, 3))

		for _, m := range g.LegalMoves() {
			require.False(t, m.IsCapture())
		}
	})
}

func TestCaptureChainsNeverRepeat(t *testing.T) {
	// A king boxed in by a ring of enemies can loop; every chain must still be finite
	// and never name a piece twice.
	g := newLayoutGame(t, twoPlayers(8, Diagonal, true),
		king(0, 0, 2), man(1, 1, 3), man(1, 3, 3), man(1, 3, 1), man(1, 1, 1))

	moves := g.LegalMoves()

	require.NotEmpty(t, moves)
	for _, m := range moves {
		seen := map[PieceID]bool{}
		for _, id := range m.Captured {
			require.False(t, seen[id], "Move %s captures %d twice", m, id)
			seen[id] = true
		}
	}
}

func TestSolitaireMoves(t *testing.T) {
	t.Run("jumps over any piece and has no simple moves", func(t *testing.T) {
		g := newLayoutGame(t, solitaire(4, Orthogonal), man(0, 0, 0), man(0, 0, 1))
		jumped := idAt(t, g, 0, 1)

		require.Equal(t, []Move{{From: at(0, 0), To: at(0, 2), Captured: []PieceID{jumped}}}, g.LegalMoves())
	})

	t.Run("jumps backwards", func(t *testing.T) {
		g := newLayoutGame(t, solitaire(4, Orthogonal), man(0, 3, 0), man(0, 2, 0))
		jumped := idAt(t, g, 2, 0)

		require.Equal(t, []Move{{From: at(3, 0), To: at(1, 0), Captured: []PieceID{jumped}}}, g.LegalMoves())
	})

	t.Run("isolated pieces have no moves", func(t *testing.T) {
		g := newLayoutGame(t, solitaire(4, Omni), man(0, 0, 0), man(0, 3, 3))

		require.Empty(t, g.LegalMoves())
	})
}
