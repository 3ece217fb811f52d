package main

import (
	"draughts/config"
	"draughts/game"
	"draughts/variant"
	"path/filepath"
	"strings"
)

// loadVariant prefers a variant file over the named preset.
func loadVariant(cfg config.Config) (string, game.Variant, error) {
	if cfg.VariantFile == "" {
		v, err := variant.Preset(cfg.Preset)
		return cfg.Preset, v, err
	}
	v, err := variant.Load(cfg.VariantFile)
	name := strings.TrimSuffix(filepath.Base(cfg.VariantFile), filepath.Ext(cfg.VariantFile))
	return name, v, err
}
