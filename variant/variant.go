// Package variant loads game variants from YAML files and built-in presets.
package variant

import (
	"bytes"
	"draughts/game"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var ErrUnknownPreset = errors.New("unknown preset")

type file struct {
	BoardSize        int          `yaml:"board_size"`
	Direction        string       `yaml:"direction"`
	MandatoryCapture bool         `yaml:"mandatory_capture"`
	FirstPlayer      int          `yaml:"first_player"`
	Players          []rosterFile `yaml:"players"`
	Dice             *diceFile    `yaml:"dice"`
}

type rosterFile struct {
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`
	Quantity int    `yaml:"quantity"`
}

type diceFile struct {
	Faces int `yaml:"faces"`
}

// Parse decodes a YAML variant. Unknown fields are rejected so a typo never
// silently falls back to a default.
func Parse(data []byte) (game.Variant, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return game.Variant{}, fmt.Errorf("failed to decode variant: %w", err)
	}

	direction := game.Diagonal
	if f.Direction != "" {
		d, err := game.ParseDirectionMode(f.Direction)
		if err != nil {
			return game.Variant{}, err
		}
		direction = d
	}

	v := game.Variant{
		BoardSize:        f.BoardSize,
		Direction:        direction,
		MandatoryCapture: f.MandatoryCapture,
		FirstPlayer:      f.FirstPlayer,
	}
	for _, p := range f.Players {
		v.Players = append(v.Players, game.Roster{Name: p.Name, Color: p.Color, Quantity: p.Quantity})
	}
	if f.Dice != nil {
		v.Dice = &game.Dice{Faces: f.Dice.Faces}
	}

	if err := v.Validate(); err != nil {
		return game.Variant{}, err
	}
	if v.BoardSize%2 != 0 {
		log.Warn().Msgf("board size %d is odd, sides will be unbalanced", v.BoardSize)
	}
	return v, nil
}

// Load reads and parses a variant file.
func Load(path string) (game.Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Variant{}, fmt.Errorf("failed to read variant: %w", err)
	}
	v, err := Parse(data)
	if err != nil {
		return game.Variant{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Marshal renders v in the format Parse reads.
func Marshal(v game.Variant) ([]byte, error) {
	f := file{
		BoardSize:        v.BoardSize,
		Direction:        v.Direction.String(),
		MandatoryCapture: v.MandatoryCapture,
		FirstPlayer:      v.FirstPlayer,
	}
	for _, p := range v.Players {
		f.Players = append(f.Players, rosterFile{Name: p.Name, Color: p.Color, Quantity: p.Quantity})
	}
	if v.Dice != nil {
		f.Dice = &diceFile{Faces: v.Dice.Faces}
	}
	return yaml.Marshal(f)
}
