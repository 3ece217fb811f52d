package game

import "fmt"

// Board owns the pieces of a game. Pieces live in a dense arena addressed by PieceID;
// removal marks the slot dead so IDs stay stable for the life of the board.
type Board struct {
	size   int
	pieces []Piece
	alive  []bool
	cells  []PieceID // size*size, NoPiece when empty
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) *Board {
	b := &Board{size: size}
	b.cells = make([]PieceID, size*size)
	b.Clear()
	return b
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

func (b *Board) index(pos Position) int {
	return pos.Row*b.size + pos.Col
}

// PieceAt returns the live piece occupying pos, if any.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if !b.InBounds(pos) {
		return Piece{}, false
	}
	id := b.cells[b.index(pos)]
	if id == NoPiece {
		return Piece{}, false
	}
	return b.pieces[id], true
}

// Piece returns the live piece with the given id.
func (b *Board) Piece(id PieceID) (Piece, bool) {
	if !b.live(id) {
		return Piece{}, false
	}
	return b.pieces[id], true
}

func (b *Board) live(id PieceID) bool {
	return id >= 0 && int(id) < len(b.pieces) && b.alive[id]
}

// Place adds p to the board at p.Pos and returns its assigned id. p.ID is ignored.
func (b *Board) Place(p Piece) (PieceID, error) {
	if !b.InBounds(p.Pos) {
		return NoPiece, fmt.Errorf("cannot place piece: %s is off the board", p.Pos)
	}
	if occupant := b.cells[b.index(p.Pos)]; occupant != NoPiece {
		return NoPiece, fmt.Errorf("cannot place piece: %s is occupied by piece %d", p.Pos, occupant)
	}
	p.ID = PieceID(len(b.pieces))
	b.pieces = append(b.pieces, p)
	b.alive = append(b.alive, true)
	b.cells[b.index(p.Pos)] = p.ID
	return p.ID, nil
}

// Remove takes a piece off the board. Removing an absent piece is a no-op.
func (b *Board) Remove(id PieceID) {
	if !b.live(id) {
		return
	}
	b.alive[id] = false
	b.cells[b.index(b.pieces[id].Pos)] = NoPiece
}

// Relocate moves a live piece to an empty cell.
func (b *Board) Relocate(id PieceID, pos Position) error {
	if !b.live(id) {
		return fmt.Errorf("cannot relocate piece %d: not on the board", id)
	}
	if !b.InBounds(pos) {
		return fmt.Errorf("cannot relocate piece %d: %s is off the board", id, pos)
	}
	if occupant := b.cells[b.index(pos)]; occupant != NoPiece && occupant != id {
		return fmt.Errorf("cannot relocate piece %d: %s is occupied by piece %d", id, pos, occupant)
	}
	b.cells[b.index(b.pieces[id].Pos)] = NoPiece
	b.pieces[id].Pos = pos
	b.cells[b.index(pos)] = id
	return nil
}

// Promote turns a live man into a king. It reports whether the rank changed.
func (b *Board) Promote(id PieceID) bool {
	if !b.live(id) || b.pieces[id].Rank != Man {
		return false
	}
	b.pieces[id].Rank = King
	return true
}

// Pieces returns copies of the live pieces in arena order.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, len(b.pieces))
	for id, p := range b.pieces {
		if b.alive[id] {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Count returns the number of live pieces owned by owner.
func (b *Board) Count(owner int) int {
	n := 0
	for id, p := range b.pieces {
		if b.alive[id] && p.Owner == owner {
			n++
		}
	}
	return n
}

// Len returns the number of live pieces.
func (b *Board) Len() int {
	n := 0
	for _, ok := range b.alive {
		if ok {
			n++
		}
	}
	return n
}

// Clear removes every piece and resets the arena.
func (b *Board) Clear() {
	b.pieces = nil
	b.alive = nil
	for i := range b.cells {
		b.cells[i] = NoPiece
	}
}
