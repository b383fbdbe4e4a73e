package game

import (
	"github.com/lox/casino21/internal/deck"
)

// Player accumulates points from the cards they collect
type Player struct {
	name   string
	points int
	active bool
	hand   []deck.Card
}

// NewPlayer creates an active player with no points
func NewPlayer(name string) *Player {
	return &Player{
		name:   name,
		active: true,
	}
}

// CollectCard adds the card's points and records it as the last card collected.
// Stopping on a high score is the casino's job, not the player's.
func (p *Player) CollectCard(card deck.Card) {
	p.points += card.Points()
	p.hand = append(p.hand, card)
}

// StopPlaying makes the player inactive for the rest of the session
func (p *Player) StopPlaying() {
	p.active = false
}

// IsActive returns true if the player can still act
func (p *Player) IsActive() bool {
	return p.active
}

// Points returns the sum of the collected cards' points
func (p *Player) Points() int {
	return p.points
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

// LastCard returns the most recently collected card, if any
func (p *Player) LastCard() (deck.Card, bool) {
	if len(p.hand) == 0 {
		return deck.Card{}, false
	}
	return p.hand[len(p.hand)-1], true
}

// Hand returns a copy of every card the player has collected
func (p *Player) Hand() []deck.Card {
	out := make([]deck.Card, len(p.hand))
	copy(out, p.hand)
	return out
}
