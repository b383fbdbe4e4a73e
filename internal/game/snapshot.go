package game

import (
	"github.com/lox/casino21/internal/deck"
)

// PlayerState is a read-only copy of one player
type PlayerState struct {
	Seat     int
	Name     string
	Points   int
	Active   bool
	Current  bool
	LastCard *deck.Card // nil until the first card is collected
	Hand     []deck.Card
}

// TableState is everything a presentation layer needs to draw the table
type TableState struct {
	SessionID   string
	Deck        []deck.Card
	Replenished int
	Players     []PlayerState
	Current     int
	StopAt      int
	Started     bool
	GameOver    bool
}

// Snapshot copies the current state of the table
func (c *Casino) Snapshot() TableState {
	players := make([]PlayerState, len(c.players))
	for i, p := range c.players {
		players[i] = PlayerState{
			Seat:    i,
			Name:    p.Name(),
			Points:  p.Points(),
			Active:  p.IsActive(),
			Current: c.started && i == c.current && p.IsActive(),
			Hand:    p.Hand(),
		}
		if card, ok := p.LastCard(); ok {
			players[i].LastCard = &card
		}
	}

	return TableState{
		SessionID:   c.sessionID,
		Deck:        c.deck.Cards(),
		Replenished: c.deck.Replenished(),
		Players:     players,
		Current:     c.current,
		StopAt:      c.stopAt,
		Started:     c.started,
		GameOver:    c.IsOver(),
	}
}

// ActivePlayers returns the states of players who can still act
func (s TableState) ActivePlayers() []PlayerState {
	var active []PlayerState
	for _, p := range s.Players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}
