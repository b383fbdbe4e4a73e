package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/casino21/internal/deck"
	"github.com/lox/casino21/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// tens returns n ten-point cards cycling through the picture ranks and suits
func tens(n int) []deck.Card {
	cards := make([]deck.Card, n)
	for i := range cards {
		cards[i] = deck.Card{
			Rank: deck.Ten + deck.Rank(i%4),
			Suit: deck.Spades + deck.Suit((i/4)%4),
		}
	}
	return cards
}

// stackedCasino seats players and deals cards in order (first element first)
func stackedCasino(t *testing.T, cards []deck.Card, names ...string) *Casino {
	t.Helper()

	rng := randutil.New(1)
	reversed := make([]deck.Card, len(cards))
	for i, c := range cards {
		reversed[len(cards)-1-i] = c
	}
	d := deck.FromCards(rng, reversed, deck.WithReplenish(deck.ReplenishOrdered))

	c := NewCasino(rng, WithDeck(d), WithLogger(quietLogger()), WithSessionID("test-session"))
	for _, name := range names {
		require.NoError(t, c.AddPlayer(NewPlayer(name)))
	}
	return c
}

// recorder collects every published event
type recorder struct {
	events []GameEvent
}

func (r *recorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}
