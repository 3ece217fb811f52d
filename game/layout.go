package game

import "fmt"

// Placement is one entry of an explicit starting layout.
type Placement struct {
	Owner int
	Rank  Rank
	Pos   Position
}

// startPositions lists the cells a roster occupies at the start of a game.
//
// Two-player diagonal games use the dark squares ((row+col) odd), each side filling from
// its own back corner. Other two-player games fill whole rows, player 0 from row 1
// downward and player 1 from row size-2 upward. Solitaire fills from the top-left corner.
func startPositions(v Variant, owner int) []Position {
	size := v.BoardSize
	quantity := v.Players[owner].Quantity
	positions := make([]Position, 0, quantity)
	add := func(r, c int) bool {
		if len(positions) >= quantity {
			return false
		}
		positions = append(positions, Position{Row: r, Col: c})
		return true
	}

	switch {
	case v.Solitaire():
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				add(r, c)
			}
		}
	case v.Direction == Diagonal && owner == 0:
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				if (r+c)%2 == 1 {
					add(r, c)
				}
			}
		}
	case v.Direction == Diagonal:
		for r := size - 1; r >= 0; r-- {
			for c := size - 1; c >= 0; c-- {
				if (r+c)%2 == 1 {
					add(r, c)
				}
			}
		}
	case owner == 0:
		for r := 1; r < size; r++ {
			for c := 0; c < size; c++ {
				add(r, c)
			}
		}
	default:
		for r := size - 2; r >= 0; r-- {
			for c := 0; c < size; c++ {
				add(r, c)
			}
		}
	}
	return positions
}

// populate fills b from the variant's rosters, or from layout when one is given.
func populate(b *Board, v Variant, layout []Placement) error {
	if layout != nil {
		for _, pl := range layout {
			if pl.Owner < 0 || pl.Owner >= len(v.Players) {
				return fmt.Errorf("layout piece at %s: owner %d out of range", pl.Pos, pl.Owner)
			}
			roster := v.Players[pl.Owner]
			if _, err := b.Place(Piece{Owner: pl.Owner, Rank: pl.Rank, Pos: pl.Pos, Name: roster.Name, Color: roster.Color}); err != nil {
				return fmt.Errorf("layout: %w", err)
			}
		}
		return nil
	}

	for owner, roster := range v.Players {
		positions := startPositions(v, owner)
		if len(positions) < roster.Quantity {
			return fmt.Errorf("player %d: only %d of %d pieces fit on a %dx%d board", owner, len(positions), roster.Quantity, v.BoardSize, v.BoardSize)
		}
		for _, pos := range positions {
			if _, err := b.Place(Piece{Owner: owner, Rank: Man, Pos: pos, Name: roster.Name, Color: roster.Color}); err != nil {
				return fmt.Errorf("player %d start layout: %w", owner, err)
			}
		}
	}
	return nil
}
