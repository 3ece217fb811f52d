package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Game is a single rules-engine instance. It is not safe for concurrent use: one
// instance per table, with access serialized by the owner.
type Game struct {
	variant Variant
	layout  []Placement
	rng     *rand.Rand
	board   *Board

	current        int
	gameOver       bool
	outcome        Outcome
	winner         int
	diceResult     int
	movesRemaining int
	mustRollDice   bool
}

type Option func(g *Game)

// WithSeed seeds the dice with a deterministic source.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithLayout replaces the generated starting layout. Reset rebuilds the same layout.
func WithLayout(layout []Placement) Option {
	return func(g *Game) {
		g.layout = append([]Placement{}, layout...)
	}
}

// NewGame validates the variant and sets up the starting position.
func NewGame(v Variant, options ...Option) (*Game, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("invalid variant: %w", err)
	}
	v.Players = append([]Roster(nil), v.Players...)
	if v.Dice != nil {
		dice := *v.Dice
		v.Dice = &dice
	}

	g := &Game{
		variant: v,
		board:   NewBoard(v.BoardSize),
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if err := g.setup(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) setup() error {
	g.board.Clear()
	if err := populate(g.board, g.variant, g.layout); err != nil {
		return err
	}
	g.current = g.variant.FirstPlayer
	g.gameOver = false
	g.outcome = Ongoing
	g.winner = NoWinner
	g.diceResult = 0
	g.movesRemaining = 0
	g.mustRollDice = g.variant.Dice != nil
	return nil
}

// Reset discards every piece and rebuilds the starting position from the same configuration.
func (g *Game) Reset() {
	// The configuration already produced a valid board once, so rebuilding cannot fail.
	if err := g.setup(); err != nil {
		panic(fmt.Sprintf("reset: %v", err))
	}
	log.Debug().Msg("game reset")
}

func (g *Game) Variant() Variant {
	return g.variant
}

func (g *Game) CurrentPlayer() int {
	return g.current
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Winner returns the winning player once the game ended with a win.
func (g *Game) Winner() (int, bool) {
	if g.outcome != Win {
		return NoWinner, false
	}
	return g.winner, true
}

func (g *Game) MustRollDice() bool {
	return g.mustRollDice
}

func (g *Game) MovesRemaining() int {
	return g.movesRemaining
}

// DiceResult returns the last roll of the current turn, if any.
func (g *Game) DiceResult() (int, bool) {
	return g.diceResult, g.diceResult > 0
}

// PieceAt exposes board lookups to presentation layers.
func (g *Game) PieceAt(pos Position) (Piece, bool) {
	return g.board.PieceAt(pos)
}

// Pieces returns copies of the live pieces.
func (g *Game) Pieces() []Piece {
	return g.board.Pieces()
}

// Count returns how many pieces player still has.
func (g *Game) Count(player int) int {
	return g.board.Count(player)
}

func (g *Game) Snapshot() State {
	return State{
		CurrentPlayer:  g.current,
		GameOver:       g.gameOver,
		Outcome:        g.outcome,
		Winner:         g.winner,
		DiceResult:     g.diceResult,
		MovesRemaining: g.movesRemaining,
		MustRollDice:   g.mustRollDice,
		Pieces:         g.board.Pieces(),
	}
}

// ExecuteMove applies move if it is legal right now. It reports false, leaving the game
// untouched, when the game is over, a roll is pending, the dice budget is spent, or the
// move is not among LegalMoves (matched on From and To).
func (g *Game) ExecuteMove(move Move) bool {
	if g.gameOver {
		log.Debug().Msgf("rejected move %s: game is over", move)
		return false
	}
	if g.variant.Dice != nil && g.mustRollDice {
		log.Debug().Msgf("rejected move %s: dice must be rolled first", move)
		return false
	}
	if g.variant.Dice != nil && g.movesRemaining <= 0 {
		log.Debug().Msgf("rejected move %s: no moves remaining", move)
		return false
	}

	legal, ok := g.match(move)
	if !ok {
		log.Debug().Msgf("rejected move %s: illegal for player %d", move, g.current)
		return false
	}
	piece, ok := g.board.PieceAt(legal.From)
	if !ok {
		return false
	}

	for _, id := range legal.Captured {
		g.board.Remove(id)
	}
	if err := g.board.Relocate(piece.ID, legal.To); err != nil {
		// Move generation only lands on vacant cells.
		panic(err)
	}
	if !g.variant.Solitaire() && legal.To.Row == g.variant.PromotionRow(piece.Owner) {
		if g.board.Promote(piece.ID) {
			log.Debug().Msgf("piece %d of player %d promoted at %s", piece.ID, piece.Owner, legal.To)
		}
	}

	if g.variant.Dice == nil {
		g.endTurn()
		return true
	}

	g.movesRemaining--
	if g.movesRemaining <= 0 {
		g.endTurn()
	} else if legal.IsCapture() {
		g.CheckWin()
	}
	return true
}

// match finds the legal move the caller meant. When the caller names a capture set,
// a legal move with the same set wins over the first From/To match.
func (g *Game) match(move Move) (Move, bool) {
	var found Move
	ok := false
	for _, m := range g.LegalMoves() {
		if m.From != move.From || m.To != move.To {
			continue
		}
		if len(move.Captured) > 0 && sameCaptures(m.Captured, move.Captured) {
			return m, true
		}
		if !ok {
			found, ok = m, true
		}
	}
	return found, ok
}

func sameCaptures(a, b []PieceID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// endTurn checks for a winner and, if play continues, hands the turn over.
func (g *Game) endTurn() {
	g.CheckWin()
	if g.gameOver {
		return
	}
	if !g.variant.Solitaire() {
		g.current = 1 - g.current
	}
	if g.variant.Dice != nil {
		g.mustRollDice = true
		g.diceResult = 0
		g.movesRemaining = 0
	}
}

// RollDice rolls for the side to move and sets its move budget. It reports false when no
// dice are configured, the game is over, or the current budget is not yet spent.
func (g *Game) RollDice() (int, bool) {
	if g.variant.Dice == nil {
		log.Debug().Msg("rejected roll: no dice configured")
		return 0, false
	}
	if g.gameOver || !g.mustRollDice {
		log.Debug().Msg("rejected roll: not awaiting a roll")
		return 0, false
	}
	result := g.rng.Intn(g.variant.Dice.Faces) + 1
	g.diceResult = result
	g.movesRemaining = result
	g.mustRollDice = false
	log.Debug().Msgf("player %d rolled %d", g.current, result)
	return result, true
}

// CheckWin ends the game when a side has been eliminated. Solitaire ends in a win when a
// single piece remains, or in a stalemate when more remain but none can jump.
func (g *Game) CheckWin() {
	if g.gameOver {
		return
	}
	if g.variant.Solitaire() {
		switch remaining := g.board.Len(); {
		case remaining == 1:
			g.finish(Win, 0)
		case len(g.LegalMoves()) == 0:
			g.finish(Stalemate, NoWinner)
		}
		return
	}
	switch {
	case g.board.Count(1) == 0:
		g.finish(Win, 0)
	case g.board.Count(0) == 0:
		g.finish(Win, 1)
	}
}

// ForceEndGame resolves a forfeit: the side with more pieces wins, and on a tie the side
// not to move wins. In solitaire the lone player is declared the winner of what is left.
func (g *Game) ForceEndGame() {
	if g.gameOver {
		return
	}
	if g.variant.Solitaire() {
		g.finish(Win, 0)
		return
	}
	p0, p1 := g.board.Count(0), g.board.Count(1)
	switch {
	case p0 > p1:
		g.finish(Win, 0)
	case p1 > p0:
		g.finish(Win, 1)
	default:
		g.finish(Win, 1-g.current)
	}
}

func (g *Game) finish(outcome Outcome, winner int) {
	g.gameOver = true
	g.outcome = outcome
	g.winner = winner
	log.Debug().Msgf("game over: %s, winner %d", outcome, winner)
}

// Hash fingerprints the position: side to move, dice state and every live piece.
func (g *Game) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(g.current))
	binary.Write(hasher, binary.LittleEndian, int64(g.movesRemaining))
	binary.Write(hasher, binary.LittleEndian, g.mustRollDice)

	for _, p := range g.board.Pieces() {
		binary.Write(hasher, binary.LittleEndian, int64(p.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(p.Rank))
		binary.Write(hasher, binary.LittleEndian, int64(p.Pos.Row))
		binary.Write(hasher, binary.LittleEndian, int64(p.Pos.Col))
	}

	return StateHash(hasher.Sum64())
}
