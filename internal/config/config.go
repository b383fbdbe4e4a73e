// Package config loads game settings from HCL.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/casino21/internal/deck"
	"github.com/lox/casino21/internal/game"
)

// DefaultFile is the configuration file read when none is given
const DefaultFile = "casino21.hcl"

// Config represents the complete game configuration
type Config struct {
	Game    *GameSettings  `hcl:"game,block"`
	Deck    *DeckSettings  `hcl:"deck,block"`
	Players []PlayerConfig `hcl:"player,block"`
	UI      *UISettings    `hcl:"ui,block"`
}

// GameSettings contains rule settings
type GameSettings struct {
	StopAt int   `hcl:"stop_at,optional"`
	Seed   int64 `hcl:"seed,optional"`
}

// DeckSettings contains deck behaviour settings
type DeckSettings struct {
	Replenish string `hcl:"replenish,optional"`
}

// PlayerConfig seats one player; order in the file is turn order
type PlayerConfig struct {
	Name string `hcl:"name,label"`
}

// UISettings contains presentation settings
type UISettings struct {
	LogLevel     string `hcl:"log_level,optional"`
	LogFile      string `hcl:"log_file,optional"`
	PressFlashMS int    `hcl:"press_flash_ms,optional"`
}

// DefaultPlayers are seated when the configuration names none
var DefaultPlayers = []string{"Michael", "Sarah", "Charlie", "David"}

// Default returns the default configuration
func Default() *Config {
	players := make([]PlayerConfig, len(DefaultPlayers))
	for i, name := range DefaultPlayers {
		players[i] = PlayerConfig{Name: name}
	}

	return &Config{
		Game: &GameSettings{
			StopAt: game.DefaultStopAt,
			Seed:   0,
		},
		Deck: &DeckSettings{
			Replenish: deck.ReplenishShuffled.String(),
		},
		Players: players,
		UI: &UISettings{
			LogLevel:     "info",
			LogFile:      "casino21.log",
			PressFlashMS: 100,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(filename, src)
}

// Parse decodes configuration from HCL source held in memory
func Parse(filename string, src []byte) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills in missing blocks and zero values
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.Game.StopAt == 0 {
		c.Game.StopAt = defaults.Game.StopAt
	}

	if c.Deck == nil {
		c.Deck = defaults.Deck
	}
	if c.Deck.Replenish == "" {
		c.Deck.Replenish = defaults.Deck.Replenish
	}

	if len(c.Players) == 0 {
		c.Players = defaults.Players
	}

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.PressFlashMS == 0 {
		c.UI.PressFlashMS = defaults.UI.PressFlashMS
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("%w: at least one player is required", game.ErrConfiguration)
	}
	for i, p := range c.Players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: player %d has an empty name", game.ErrConfiguration, i+1)
		}
	}

	if c.Game.StopAt <= 0 {
		return fmt.Errorf("%w: stop_at must be positive", game.ErrConfiguration)
	}

	if _, err := deck.ParsePolicy(c.Deck.Replenish); err != nil {
		return fmt.Errorf("%w: %v", game.ErrConfiguration, err)
	}

	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("%w: invalid log level: %s", game.ErrConfiguration, c.UI.LogLevel)
	}

	if c.UI.PressFlashMS < 0 {
		return fmt.Errorf("%w: press_flash_ms cannot be negative", game.ErrConfiguration)
	}

	return nil
}

// PlayerNames returns the configured players in turn order
func (c *Config) PlayerNames() []string {
	names := make([]string, len(c.Players))
	for i, p := range c.Players {
		names[i] = p.Name
	}
	return names
}

// SetPlayers replaces the configured players
func (c *Config) SetPlayers(names []string) {
	c.Players = make([]PlayerConfig, len(names))
	for i, name := range names {
		c.Players[i] = PlayerConfig{Name: name}
	}
}

// ReplenishPolicy returns the parsed deck policy, falling back to shuffled
func (c *Config) ReplenishPolicy() deck.ReplenishPolicy {
	policy, err := deck.ParsePolicy(c.Deck.Replenish)
	if err != nil {
		return deck.ReplenishShuffled
	}
	return policy
}

// LogLevel returns the parsed log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Encode renders the configuration as HCL
func (c *Config) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())
	return hclwrite.Format(f.Bytes())
}
