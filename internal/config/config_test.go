package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/casino21/internal/deck"
	"github.com/lox/casino21/internal/game"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultPlayers, cfg.PlayerNames())
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "casino21.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
game {
  stop_at = 17
  seed    = 42
}

deck {
  replenish = "ordered"
}

player "Ann" {}
player "Ben" {}

ui {
  log_level = "debug"
}
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 17, cfg.Game.StopAt)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, deck.ReplenishOrdered, cfg.ReplenishPolicy())
	assert.Equal(t, []string{"Ann", "Ben"}, cfg.PlayerNames())
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())

	// Unset values fall back to defaults
	assert.Equal(t, "casino21.log", cfg.UI.LogFile)
	assert.Equal(t, 100, cfg.UI.PressFlashMS)
}

func TestParseEmptyAppliesDefaults(t *testing.T) {
	cfg, err := Parse("empty.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("bad.hcl", []byte(`game {`))
	assert.Error(t, err)

	_, err = Parse("bad.hcl", []byte(`game { bogus = 1 }`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no players", mutate: func(c *Config) { c.Players = nil }},
		{name: "blank player", mutate: func(c *Config) { c.SetPlayers([]string{"Ann", " "}) }},
		{name: "zero stop_at", mutate: func(c *Config) { c.Game.StopAt = 0 }},
		{name: "bad policy", mutate: func(c *Config) { c.Deck.Replenish = "sideways" }},
		{name: "bad log level", mutate: func(c *Config) { c.UI.LogLevel = "loud" }},
		{name: "negative flash", mutate: func(c *Config) { c.UI.PressFlashMS = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), game.ErrConfiguration)
		})
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.Game.Seed = 7
	cfg.SetPlayers([]string{"Ann", "Ben", "Cat"})

	src := cfg.Encode()
	assert.Contains(t, string(src), `player "Ann" {`)

	back, err := Parse("encoded.hcl", src)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
