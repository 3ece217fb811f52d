package gamemaster

import (
	"draughts/game"
	"draughts/meta"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, dice *game.Dice) *Table {
	t.Helper()
	g, err := game.NewGame(game.Variant{
		BoardSize: 8,
		Direction: game.Diagonal,
		Players:   []game.Roster{{Quantity: 12}, {Quantity: 12}},
		Dice:      dice,
	}, game.WithSeed(11))
	require.NoError(t, err)
	return NewTable(g)
}

func TestTablePlay(t *testing.T) {
	table := newTable(t, nil)
	move := table.LegalMoves()[0]

	require.NoError(t, table.Play(move))

	u, ok := table.Next()
	require.True(t, ok)
	require.Equal(t, Moved, u.Event)
	require.Equal(t, move, u.Move)
	require.Equal(t, 1, u.State.CurrentPlayer)
	_, ok = table.Next()
	require.False(t, ok, "Feed should be drained")
}

func TestTablePlayIllegal(t *testing.T) {
	table := newTable(t, nil)
	before := table.Snapshot()

	err := table.Play(game.Move{From: game.Position{Row: 0, Col: 1}, To: game.Position{Row: 4, Col: 4}})

	require.ErrorIs(t, err, ErrIllegalMove)
	require.Equal(t, before, table.Snapshot())
	_, ok := table.Next()
	require.False(t, ok, "Rejected moves publish nothing")
}

func TestTableDice(t *testing.T) {
	table := newTable(t, &game.Dice{Faces: 6})

	err := table.Play(table.LegalMoves()[0])
	require.ErrorIs(t, err, ErrRollPending)

	roll, err := table.Roll()
	require.NoError(t, err)
	require.GreaterOrEqual(t, roll, 1)
	require.LessOrEqual(t, roll, 6)

	_, err = table.Roll()
	require.ErrorIs(t, err, ErrNotAwaitingRoll)

	u, ok := table.Next()
	require.True(t, ok)
	require.Equal(t, Rolled, u.Event)
	require.Equal(t, roll, u.Roll)
	require.Equal(t, roll, u.State.MovesRemaining)
}

func TestTableRollWithoutDice(t *testing.T) {
	_, err := newTable(t, nil).Roll()
	require.ErrorIs(t, err, ErrNotAwaitingRoll)
}

func TestTableMaterial(t *testing.T) {
	table := newTable(t, nil)
	require.Zero(t, table.Material(0), "Equal armies at the start")
}

func TestTableForfeit(t *testing.T) {
	table := newTable(t, nil)

	require.NoError(t, table.Forfeit())

	state := table.Snapshot()
	require.True(t, state.GameOver)
	require.Equal(t, 1, state.Winner, "Tied counts go to the side not on move")
	require.ErrorIs(t, table.Forfeit(), ErrGameOver)
	require.ErrorIs(t, table.Play(game.Move{}), ErrGameOver)
	_, err := table.Roll()
	require.ErrorIs(t, err, ErrGameOver)
}

func TestTableReset(t *testing.T) {
	table := newTable(t, nil)
	start := table.Snapshot()
	require.NoError(t, table.Play(table.LegalMoves()[0]))
	require.NoError(t, table.Forfeit())

	table.Reset()

	require.Equal(t, start, table.Snapshot())
	var events []EventType
	for {
		u, ok := table.Next()
		if !ok {
			break
		}
		events = append(events, u.Event)
	}
	require.Equal(t, []EventType{Moved, Forfeited, Restarted}, events)
}

func TestTableFeedDropsWhenFull(t *testing.T) {
	table := newTable(t, nil)
	for range meta.UPDATE_BUFFER + 5 {
		table.Reset()
	}

	drained := 0
	for {
		if _, ok := table.Next(); !ok {
			break
		}
		drained++
	}
	require.Equal(t, meta.UPDATE_BUFFER, drained)
}
