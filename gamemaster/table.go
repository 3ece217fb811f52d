package gamemaster

import (
	"draughts/game"
	"draughts/meta"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver        = errors.New("game is over - no moves allowed")
	ErrRollPending     = errors.New("dice roll pending")
	ErrNoMovesLeft     = errors.New("move budget exhausted")
	ErrNotAwaitingRoll = errors.New("not awaiting a dice roll")
	ErrIllegalMove     = errors.New("illegal move")
)

type EventType int

const (
	Moved EventType = iota
	Rolled
	Forfeited
	Restarted
)

func (e EventType) String() string {
	switch e {
	case Moved:
		return "moved"
	case Rolled:
		return "rolled"
	case Forfeited:
		return "forfeited"
	case Restarted:
		return "restarted"
	default:
		return fmt.Sprintf("EventType(%d)", int(e))
	}
}

// Update describes one accepted operation and the state it produced.
type Update struct {
	Event EventType
	Move  game.Move // set for Moved
	Roll  int       // set for Rolled
	State game.State
	Hash  game.StateHash
}

// Table serializes access to a single game. Every operation holds the lock
// for its whole duration, so an update always reflects the operation that
// produced it.
type Table struct {
	mu       sync.Mutex
	game     *game.Game
	updateCh chan Update
}

func NewTable(g *game.Game) *Table {
	return &Table{
		game:     g,
		updateCh: make(chan Update, meta.UPDATE_BUFFER),
	}
}

// Play applies a move for the side to move.
func (t *Table) Play(move game.Move) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case t.game.GameOver():
		return ErrGameOver
	case t.game.MustRollDice():
		return ErrRollPending
	case t.game.Variant().Dice != nil && t.game.MovesRemaining() <= 0:
		return ErrNoMovesLeft
	}
	if !t.game.ExecuteMove(move) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}

	t.publish(Update{Event: Moved, Move: move})
	return nil
}

// Roll rolls the dice and returns the new move budget.
func (t *Table) Roll() (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.game.GameOver() {
		return 0, ErrGameOver
	}
	roll, ok := t.game.RollDice()
	if !ok {
		return 0, ErrNotAwaitingRoll
	}

	t.publish(Update{Event: Rolled, Roll: roll})
	return roll, nil
}

// Forfeit ends the game by piece count.
func (t *Table) Forfeit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.game.GameOver() {
		return ErrGameOver
	}
	t.game.ForceEndGame()

	t.publish(Update{Event: Forfeited})
	return nil
}

func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.game.Reset()
	t.publish(Update{Event: Restarted})
}

func (t *Table) LegalMoves() []game.Move {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.LegalMoves()
}

func (t *Table) Snapshot() game.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Snapshot()
}

// Players returns the number of rosters, 1 for solitaire.
func (t *Table) Players() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.game.Variant().Players)
}

// Material is player's weighted piece balance, see game.Material.
func (t *Table) Material(player int) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Material(player)
}

// Count returns the live pieces of a player.
func (t *Table) Count(player int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Count(player)
}

// Next returns the oldest unread update, or false if none is queued.
func (t *Table) Next() (Update, bool) {
	select {
	case u := <-t.updateCh:
		return u, true
	default:
		return Update{}, false
	}
}

// publish must be called with the lock held.
func (t *Table) publish(u Update) {
	u.State = t.game.Snapshot()
	u.Hash = t.game.Hash()
	select {
	case t.updateCh <- u:
	default:
		log.Warn().Msgf("update feed full, dropping %s update", u.Event)
	}
}
