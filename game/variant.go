package game

import (
	"errors"
	"fmt"
	"strings"
)

type DirectionMode int

const (
	Diagonal DirectionMode = iota
	Orthogonal
	Omni
)

func (m DirectionMode) String() string {
	switch m {
	case Diagonal:
		return "diagonal"
	case Orthogonal:
		return "orthogonal"
	case Omni:
		return "omni"
	default:
		return "unknown"
	}
}

// ParseDirectionMode accepts the mode names used by variant files. "any" is an alias of omni.
func ParseDirectionMode(s string) (DirectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "diagonal":
		return Diagonal, nil
	case "orthogonal":
		return Orthogonal, nil
	case "omni", "any":
		return Omni, nil
	default:
		return 0, fmt.Errorf("unknown direction mode %q", s)
	}
}

// Roster describes one player's pieces.
type Roster struct {
	Name     string
	Color    string
	Quantity int
}

type Dice struct {
	Faces int
}

// Variant is the static configuration of a game. The engine never mutates it.
type Variant struct {
	BoardSize        int
	Direction        DirectionMode
	Players          []Roster
	MandatoryCapture bool
	FirstPlayer      int
	Dice             *Dice // nil when turns are not dice-limited
}

const (
	MinBoardSize = 2
	MaxBoardSize = 26
)

var (
	ErrBoardSize   = errors.New("board size out of range")
	ErrPlayerCount = errors.New("variant needs one or two rosters")
	ErrQuantity    = errors.New("roster quantity must be non-negative")
	ErrFirstPlayer = errors.New("first player out of range")
	ErrDiceFaces   = errors.New("dice must have at least one face")
	ErrDirection   = errors.New("unknown direction mode")
)

// Solitaire reports whether the variant is the single-roster ruleset.
func (v Variant) Solitaire() bool {
	return len(v.Players) == 1
}

// Validate checks the fields the engine relies on to build a board.
func (v Variant) Validate() error {
	if v.BoardSize < MinBoardSize || v.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrBoardSize, v.BoardSize, MinBoardSize, MaxBoardSize)
	}
	if v.Direction < Diagonal || v.Direction > Omni {
		return fmt.Errorf("%w: %d", ErrDirection, v.Direction)
	}
	if len(v.Players) < 1 || len(v.Players) > 2 {
		return fmt.Errorf("%w: got %d", ErrPlayerCount, len(v.Players))
	}
	for i, roster := range v.Players {
		if roster.Quantity < 0 {
			return fmt.Errorf("%w: player %d has %d", ErrQuantity, i, roster.Quantity)
		}
	}
	if v.FirstPlayer < 0 || v.FirstPlayer >= len(v.Players) {
		return fmt.Errorf("%w: %d", ErrFirstPlayer, v.FirstPlayer)
	}
	if v.Dice != nil && v.Dice.Faces < 1 {
		return fmt.Errorf("%w: %d", ErrDiceFaces, v.Dice.Faces)
	}
	return nil
}

// PromotionRow returns the row on which a man of the given owner becomes a king.
func (v Variant) PromotionRow(owner int) int {
	if owner == 0 {
		return v.BoardSize - 1
	}
	return 0
}
