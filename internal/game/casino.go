package game

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/casino21/internal/deck"
)

// Casino owns the deck and the players and decides whose turn it is
type Casino struct {
	deck    *deck.Deck
	players []*Player
	current int
	stopAt  int
	started bool
	over    bool

	sessionID string
	bus       EventBus
	clock     quartz.Clock
	logger    *log.Logger
}

// Outcome describes the effect of one applied action
type Outcome struct {
	Seat     int
	Player   *Player
	Action   Action
	Card     deck.Card // only set for Hit
	Points   int
	Stopped  bool
	Busted   bool
	GameOver bool
	Next     int // seat to act next; unchanged when the game is over
}

// NewCasino creates a casino with a shuffled standard deck drawn from rng.
// The rng is required to keep randomness explicit.
func NewCasino(rng *rand.Rand, opts ...Option) *Casino {
	if rng == nil {
		panic("rng is required for casino creation")
	}

	c := &Casino{
		stopAt: DefaultStopAt,
		clock:  quartz.NewReal(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.deck == nil {
		c.deck = deck.New(rng)
		c.deck.Shuffle()
	}
	if c.bus == nil {
		c.bus = NewEventBus()
	}
	if c.sessionID == "" {
		c.sessionID = newSessionID()
	}
	return c
}

func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// AddPlayer seats a player at the end of the table
func (c *Casino) AddPlayer(p *Player) error {
	if c.started {
		return fmt.Errorf("adding %s: %w", p.Name(), ErrSessionStarted)
	}
	c.players = append(c.players, p)
	c.logger.Debug("Player seated", "player", p.Name(), "seat", len(c.players)-1)
	return nil
}

// Start locks the player list. Calling it again is a no-op.
func (c *Casino) Start() error {
	if c.started {
		return nil
	}
	if len(c.players) == 0 {
		return fmt.Errorf("%w: no players at the table", ErrConfiguration)
	}
	if c.stopAt <= 0 {
		return fmt.Errorf("%w: stop threshold must be positive, got %d", ErrConfiguration, c.stopAt)
	}

	c.started = true
	c.current = 0
	c.logger.Info("Session started", "session", c.sessionID, "players", len(c.players), "stop_at", c.stopAt)

	names := make([]string, len(c.players))
	for i, p := range c.players {
		names[i] = p.Name()
	}
	c.bus.Publish(SessionStartEvent{
		SessionID: c.sessionID,
		Players:   names,
		StopAt:    c.stopAt,
		timestamp: c.clock.Now(),
	})

	// Seat zero may already be out if the caller stopped players before starting
	if !c.players[0].IsActive() {
		c.NextPlayer()
	}
	c.checkGameOver()
	return nil
}

// HasActivePlayers returns true if at least one player can still act
func (c *Casino) HasActivePlayers() bool {
	for _, p := range c.players {
		if p.IsActive() {
			return true
		}
	}
	return false
}

// NextPlayer moves the turn to the next active player, wrapping around the table.
// It does nothing when nobody is active.
func (c *Casino) NextPlayer() {
	if !c.HasActivePlayers() {
		return
	}

	from := c.current
	c.current = (c.current + 1) % len(c.players)
	for !c.players[c.current].IsActive() {
		c.current = (c.current + 1) % len(c.players)
	}

	if c.started {
		c.bus.Publish(TurnChangeEvent{
			From:      from,
			To:        c.current,
			Player:    c.players[c.current].Name(),
			timestamp: c.clock.Now(),
		})
	}
}

// ApplyAction performs action for the player in seat.
// The seat must be the current one and that player must still be active.
func (c *Casino) ApplyAction(seat int, action Action) (Outcome, error) {
	if !c.started {
		return Outcome{}, ErrNotStarted
	}
	if action != Hit && action != Stand {
		return Outcome{}, fmt.Errorf("%w: %d", ErrUnknownAction, int(action))
	}
	if !c.HasActivePlayers() {
		return Outcome{}, fmt.Errorf("%w: game is over", ErrInvalidTurn)
	}
	if seat < 0 || seat >= len(c.players) {
		return Outcome{}, fmt.Errorf("%w: no seat %d", ErrInvalidTurn, seat)
	}
	if seat != c.current {
		return Outcome{}, fmt.Errorf("%w: seat %d acted but seat %d is to act", ErrInvalidTurn, seat, c.current)
	}

	player := c.players[seat]
	if !player.IsActive() {
		return Outcome{}, fmt.Errorf("%w: %s is no longer playing", ErrInvalidTurn, player.Name())
	}

	outcome := Outcome{Seat: seat, Player: player, Action: action}

	switch action {
	case Hit:
		card := c.deck.Deal()
		player.CollectCard(card)
		outcome.Card = card
		if player.Points() >= c.stopAt {
			player.StopPlaying()
			outcome.Busted = true
		}
	case Stand:
		player.StopPlaying()
	}
	outcome.Points = player.Points()
	outcome.Stopped = !player.IsActive()

	c.logger.Debug("Action applied",
		"player", player.Name(),
		"action", action,
		"card", outcome.Card,
		"points", outcome.Points,
		"stopped", outcome.Stopped)

	c.bus.Publish(PlayerActionEvent{
		Seat:      seat,
		Player:    player.Name(),
		Action:    action,
		Card:      outcome.Card,
		Points:    outcome.Points,
		Stopped:   outcome.Stopped,
		Busted:    outcome.Busted,
		timestamp: c.clock.Now(),
	})

	c.NextPlayer()
	outcome.Next = c.current
	outcome.GameOver = c.checkGameOver()
	return outcome, nil
}

// Hit deals a card to the current player
func (c *Casino) Hit() (Outcome, error) {
	return c.ApplyAction(c.current, Hit)
}

// Stand stops the current player
func (c *Casino) Stand() (Outcome, error) {
	return c.ApplyAction(c.current, Stand)
}

// checkGameOver publishes GameOverEvent the first time nobody is active
func (c *Casino) checkGameOver() bool {
	if c.HasActivePlayers() {
		return false
	}
	if !c.over {
		c.over = true
		standings := make([]Standing, len(c.players))
		for i, p := range c.players {
			standings[i] = Standing{Player: p.Name(), Points: p.Points()}
		}
		c.logger.Info("Game over", "session", c.sessionID)
		c.bus.Publish(GameOverEvent{
			SessionID: c.sessionID,
			Standings: standings,
			timestamp: c.clock.Now(),
		})
	}
	return true
}

// IsOver returns true once a started session has no active players
func (c *Casino) IsOver() bool {
	return c.started && !c.HasActivePlayers()
}

// CurrentPlayer returns the player whose turn it is, or nil before any player is seated
func (c *Casino) CurrentPlayer() *Player {
	if len(c.players) == 0 {
		return nil
	}
	return c.players[c.current]
}

// CurrentIndex returns the seat whose turn it is
func (c *Casino) CurrentIndex() int {
	return c.current
}

// Players returns the seated players in turn order
func (c *Casino) Players() []*Player {
	out := make([]*Player, len(c.players))
	copy(out, c.players)
	return out
}

// Deck returns the casino's deck
func (c *Casino) Deck() *deck.Deck {
	return c.deck
}

// Events returns the bus the casino publishes to
func (c *Casino) Events() EventBus {
	return c.bus
}

// SessionID identifies this game session in logs and events
func (c *Casino) SessionID() string {
	return c.sessionID
}

// StopAt returns the score that stops a player
func (c *Casino) StopAt() int {
	return c.stopAt
}

// Started reports whether Start has succeeded
func (c *Casino) Started() bool {
	return c.started
}
