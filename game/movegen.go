package game

import "slices"

// LegalMoves returns every move available to the side to move.
//
// Ordering is deterministic (piece arena order, then direction order, then distance) but
// carries no meaning. With mandatory capture, any available capture anywhere on the side
// suppresses every simple move.
func (g *Game) LegalMoves() []Move {
	if g.gameOver {
		return nil
	}
	side := g.sidePieces()

	if g.variant.Solitaire() {
		var moves []Move
		for _, p := range side {
			moves = append(moves, g.jumpMoves(p, p.Pos, p.Pos, nil)...)
		}
		return moves
	}

	jumps := make([][]Move, len(side))
	anyJump := false
	for i, p := range side {
		jumps[i] = g.jumpMoves(p, p.Pos, p.Pos, nil)
		anyJump = anyJump || len(jumps[i]) > 0
	}

	var moves []Move
	for i, p := range side {
		if g.variant.MandatoryCapture && anyJump {
			moves = append(moves, jumps[i]...)
			continue
		}
		if !g.variant.MandatoryCapture {
			moves = append(moves, jumps[i]...)
		}
		moves = append(moves, g.simpleMoves(p)...)
	}
	return moves
}

// sidePieces returns the pieces the side to move may play. In solitaire every piece does.
func (g *Game) sidePieces() []Piece {
	all := g.board.Pieces()
	if g.variant.Solitaire() {
		return all
	}
	side := all[:0]
	for _, p := range all {
		if p.Owner == g.current {
			side = append(side, p)
		}
	}
	return side
}

func (g *Game) directions(p Piece) []Direction {
	return Directions(g.variant.Direction, p.Owner, p.Rank, g.variant.Solitaire())
}

func (g *Game) reach(p Piece) int {
	if p.Rank == King {
		return g.variant.BoardSize
	}
	return 1
}

// simpleMoves lists the non-capturing moves of p. Solitaire has none.
func (g *Game) simpleMoves(p Piece) []Move {
	var moves []Move
	for _, d := range g.directions(p) {
		for dist := 1; dist <= g.reach(p); dist++ {
			to := p.Pos.Step(d, dist)
			if !g.board.InBounds(to) {
				break
			}
			if _, occupied := g.board.PieceAt(to); occupied {
				break
			}
			moves = append(moves, Move{From: p.Pos, To: to})
		}
	}
	return moves
}

// jumpMoves lists every capture chain p can make from at, reporting each intermediate
// landing as its own move with From fixed to origin. captured is never mutated: each branch
// extends its own copy so sibling chains cannot see each other's captures.
//
// The mover's origin counts as empty. Pieces captured earlier in the chain are still on the
// board: the scan passes over them but cannot land on or capture them again.
func (g *Game) jumpMoves(p Piece, at, origin Position, captured []PieceID) []Move {
	var moves []Move
	for _, d := range g.directions(p) {
		lastEnemy := 0
		for dist := 1; dist <= g.reach(p); dist++ {
			target := at.Step(d, dist)
			landing := at.Step(d, dist+1)
			if !g.board.InBounds(landing) {
				break
			}

			occupant, occupied := g.board.PieceAt(target)
			if !occupied || occupant.ID == p.ID || slices.Contains(captured, occupant.ID) {
				continue
			}
			if !g.capturable(p, occupant) {
				break
			}
			// Two enemies with no gap between them shield each other.
			if lastEnemy > 0 && dist-lastEnemy == 1 {
				break
			}
			lastEnemy = dist

			if !g.vacant(landing, p.ID) {
				continue
			}
			chain := append(slices.Clone(captured), occupant.ID)
			moves = append(moves, Move{From: origin, To: landing, Captured: chain})
			moves = append(moves, g.jumpMoves(p, landing, origin, chain)...)
		}
	}
	return moves
}

// capturable reports whether mover may jump other. In solitaire any piece may be jumped.
func (g *Game) capturable(mover, other Piece) bool {
	return g.variant.Solitaire() || other.Owner != mover.Owner
}

// vacant reports whether pos can be landed on by mover.
func (g *Game) vacant(pos Position, mover PieceID) bool {
	occupant, occupied := g.board.PieceAt(pos)
	return !occupied || occupant.ID == mover
}
