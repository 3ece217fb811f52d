package game

// Direction is a unit step on the board.
type Direction struct {
	DRow int
	DCol int
}

var (
	diagonalDirections = []Direction{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
	orthogonalDirections = []Direction{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
	omniDirections = []Direction{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// forward is the row delta pointing at the opponent's side for owner.
func forward(owner int) int {
	if owner == 0 {
		return 1
	}
	return -1
}

// Directions returns the ordered step vectors a piece may consider.
// Solitaire lifts every forward restriction.
func Directions(mode DirectionMode, owner int, rank Rank, solitaire bool) []Direction {
	all := modeDirections(mode)
	if solitaire || mode == Omni {
		return all
	}

	switch rank {
	case King:
		return all
	case Man:
		fwd := forward(owner)
		dirs := make([]Direction, 0, len(all))
		for _, d := range all {
			if d.DRow == fwd || (mode == Orthogonal && d.DCol != 0) {
				dirs = append(dirs, d)
			}
		}
		return dirs
	default:
		panic("unknown rank")
	}
}

// modeDirections returns a fresh copy so callers may not alias the tables above.
func modeDirections(mode DirectionMode) []Direction {
	switch mode {
	case Diagonal:
		return append([]Direction(nil), diagonalDirections...)
	case Orthogonal:
		return append([]Direction(nil), orthogonalDirections...)
	case Omni:
		return append([]Direction(nil), omniDirections...)
	default:
		panic("unknown direction mode")
	}
}
