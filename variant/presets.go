package variant

import (
	"draughts/game"
	"fmt"
	"sort"
)

var presets = map[string]func() game.Variant{
	"classic": func() game.Variant {
		return twoSided(8, game.Diagonal, 12, true)
	},
	"orthogonal": func() game.Variant {
		return twoSided(8, game.Orthogonal, 16, true)
	},
	"omni": func() game.Variant {
		return twoSided(8, game.Omni, 16, false)
	},
	"dice": func() game.Variant {
		v := twoSided(8, game.Diagonal, 12, false)
		v.Dice = &game.Dice{Faces: 6}
		return v
	},
	"solitaire": func() game.Variant {
		return game.Variant{
			BoardSize: 4,
			Direction: game.Orthogonal,
			Players:   []game.Roster{{Name: "peg", Color: "red", Quantity: 8}},
		}
	},
}

func twoSided(size int, direction game.DirectionMode, quantity int, mandatory bool) game.Variant {
	return game.Variant{
		BoardSize: size,
		Direction: direction,
		Players: []game.Roster{
			{Name: "pawn", Color: "white", Quantity: quantity},
			{Name: "pawn", Color: "black", Quantity: quantity},
		},
		MandatoryCapture: mandatory,
	}
}

// Preset returns a fresh copy of a built-in variant.
func Preset(name string) (game.Variant, error) {
	build, ok := presets[name]
	if !ok {
		return game.Variant{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return build(), nil
}

func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
