package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/casino21/internal/deck"
)

// DefaultStopAt is the score at which a player is stopped
const DefaultStopAt = 21

// Option configures a Casino during creation
type Option func(*Casino)

// WithDeck uses the given deck as-is instead of a freshly shuffled one
func WithDeck(d *deck.Deck) Option {
	return func(c *Casino) {
		c.deck = d
	}
}

// WithStopAt changes the score that ends a player's session
func WithStopAt(points int) Option {
	return func(c *Casino) {
		c.stopAt = points
	}
}

// WithLogger sets the logger; the casino logs under the "casino" prefix
func WithLogger(logger *log.Logger) Option {
	return func(c *Casino) {
		c.logger = logger.WithPrefix("casino")
	}
}

// WithClock sets the clock used to timestamp events
func WithClock(clock quartz.Clock) Option {
	return func(c *Casino) {
		c.clock = clock
	}
}

// WithSessionID overrides the generated session identifier
func WithSessionID(id string) Option {
	return func(c *Casino) {
		c.sessionID = id
	}
}

// WithEventBus publishes events to an existing bus
func WithEventBus(bus EventBus) Option {
	return func(c *Casino) {
		c.bus = bus
	}
}
