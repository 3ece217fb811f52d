package game

import "fmt"

// Position is a cell on the board, addressed by row then column.
type Position struct {
	Row int
	Col int
}

// Step returns the position n unit steps away along d.
func (p Position) Step(d Direction, n int) Position {
	return Position{Row: p.Row + d.DRow*n, Col: p.Col + d.DCol*n}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// PieceID is the stable index of a piece in the board arena.
type PieceID int

const NoPiece PieceID = -1

type Rank int

const (
	Man Rank = iota
	King
)

func (r Rank) String() string {
	switch r {
	case Man:
		return "man"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// Piece is a single piece on the board. Name and Color come from the owner's roster.
type Piece struct {
	ID    PieceID
	Owner int
	Rank  Rank
	Pos   Position
	Name  string
	Color string
}

// Move relocates the piece at From to To, removing every piece in Captured.
type Move struct {
	From     Position
	To       Position
	Captured []PieceID
}

func (m Move) IsCapture() bool {
	return len(m.Captured) > 0
}

func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("%s x %s %v", m.From, m.To, m.Captured)
	}
	return fmt.Sprintf("%s - %s", m.From, m.To)
}

// Outcome describes how a game stands. Stalemate is only reachable in solitaire.
type Outcome int

const (
	Ongoing Outcome = iota
	Win
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Win:
		return "win"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// NoWinner is reported in snapshots when the game has no declared winner.
const NoWinner = -1

type StateHash uint64

// State is a read-only snapshot of a game for presentation layers and update feeds.
type State struct {
	CurrentPlayer  int
	GameOver       bool
	Outcome        Outcome
	Winner         int // NoWinner unless Outcome is Win
	DiceResult     int // 0 when no roll is showing
	MovesRemaining int
	MustRollDice   bool
	Pieces         []Piece
}

// MoveLister is anything that can enumerate the legal moves of the side to move.
type MoveLister interface {
	LegalMoves() []Move
}
