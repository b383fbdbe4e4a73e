package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/casino21/internal/config"
	"github.com/lox/casino21/internal/deck"
	"github.com/lox/casino21/internal/game"
	"github.com/lox/casino21/internal/randutil"
	"github.com/lox/casino21/internal/tui"
)

// Overrides are command-line values that take precedence over the config file
type Overrides struct {
	Seed     int64    `help:"Deterministic shuffle seed (0 = random)"`
	Player   []string `short:"p" help:"Seat a player (repeatable, replaces configured players)"`
	StopAt   int      `help:"Score that stops a player"`
	LogLevel string   `help:"Log level (debug, info, warn, error)"`
	LogFile  string   `type:"path" help:"Log file (the table owns the terminal)"`
}

// apply copies any set override onto cfg
func (o Overrides) apply(cfg *config.Config) {
	if o.Seed != 0 {
		cfg.Game.Seed = o.Seed
	}
	if len(o.Player) > 0 {
		cfg.SetPlayers(o.Player)
	}
	if o.StopAt != 0 {
		cfg.Game.StopAt = o.StopAt
	}
	if o.LogLevel != "" {
		cfg.UI.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.UI.LogFile = o.LogFile
	}
}

// PlayCmd runs the interactive table
type PlayCmd struct {
	Overrides `embed:""`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := loadConfig(cli.Config, c.Overrides)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
		Level:           cfg.LogLevel(),
	})

	clock := quartz.NewReal()
	casino, err := newCasino(cfg, logger, clock)
	if err != nil {
		return err
	}

	model := tui.NewTUIModel(casino, logger, clock, tui.Options{
		PressFlash: time.Duration(cfg.UI.PressFlashMS) * time.Millisecond,
	})
	if err := casino.Start(); err != nil {
		return err
	}

	logger.Info("Starting table", "session", casino.SessionID(), "players", cfg.PlayerNames())
	return tui.Run(model)
}

// loadConfig reads the config file, applies overrides and validates the result
func loadConfig(path string, overrides Overrides) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	overrides.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCasino seats the configured players at a casino with a freshly shuffled deck.
// The session is not started so that subscribers can attach first.
func newCasino(cfg *config.Config, logger *log.Logger, clock quartz.Clock) (*game.Casino, error) {
	rng := randutil.FromSeed(cfg.Game.Seed)

	d := deck.New(rng, deck.WithReplenish(cfg.ReplenishPolicy()))
	d.Shuffle()

	casino := game.NewCasino(rng,
		game.WithDeck(d),
		game.WithStopAt(cfg.Game.StopAt),
		game.WithLogger(logger),
		game.WithClock(clock),
	)
	for _, name := range cfg.PlayerNames() {
		if err := casino.AddPlayer(game.NewPlayer(name)); err != nil {
			return nil, err
		}
	}
	return casino, nil
}
