package player

import (
	"draughts/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves of the side to move.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// SelectMove returns false when the side to move has no legal move.
func (r *Random) SelectMove(state game.MoveLister) (game.Move, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}

// Play selects a move and applies it through ExecuteMove.
func (r *Random) Play(g *game.Game) (game.Move, bool) {
	move, ok := r.SelectMove(g)
	if !ok {
		log.Debug().Msgf("player %d has no legal moves", g.CurrentPlayer())
		return game.Move{}, false
	}
	if !g.ExecuteMove(move) {
		return move, false
	}
	return move, true
}
