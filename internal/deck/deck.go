package deck

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// ReplenishPolicy controls how an exhausted deck is rebuilt
type ReplenishPolicy int

const (
	// ReplenishShuffled rebuilds the 52 cards and shuffles them before dealing
	ReplenishShuffled ReplenishPolicy = iota
	// ReplenishOrdered rebuilds the 52 cards in canonical order
	ReplenishOrdered
)

// String returns the string representation of a policy
func (p ReplenishPolicy) String() string {
	switch p {
	case ReplenishShuffled:
		return "shuffled"
	case ReplenishOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as written in configuration
func ParsePolicy(s string) (ReplenishPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shuffled":
		return ReplenishShuffled, nil
	case "ordered":
		return ReplenishOrdered, nil
	default:
		return 0, fmt.Errorf("unknown replenish policy %q", s)
	}
}

// Option configures a Deck during creation
type Option func(*Deck)

// WithReplenish sets the policy used when dealing from an empty deck
func WithReplenish(policy ReplenishPolicy) Option {
	return func(d *Deck) {
		d.policy = policy
	}
}

// Deck is an ordered sequence of cards. Cards are dealt from the end.
type Deck struct {
	cards       []Card
	rng         *rand.Rand
	policy      ReplenishPolicy
	replenished int
}

// New creates a standard 52-card deck in canonical order. It is not shuffled.
func New(rng *rand.Rand, opts ...Option) *Deck {
	return FromCards(rng, Standard(), opts...)
}

// FromCards creates a deck holding exactly the given sequence, last card dealt first.
// Once exhausted it replenishes to a standard deck like any other.
func FromCards(rng *rand.Rand, cards []Card, opts ...Option) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{
		cards: make([]Card, len(cards), max(len(cards), 52)),
		rng:   rng,
	}
	copy(d.cards, cards)

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the last card. An empty deck is rebuilt first.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		d.replenish()
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card
}

func (d *Deck) replenish() {
	d.cards = append(d.cards[:0], Standard()...)
	d.replenished++
	if d.policy == ReplenishShuffled {
		d.Shuffle()
	}
}

// Cards returns a copy of the remaining cards. The last element is dealt next.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Replenished reports how many times the deck has been rebuilt after running out
func (d *Deck) Replenished() int {
	return d.replenished
}

// Policy returns the deck's replenish policy
func (d *Deck) Policy() ReplenishPolicy {
	return d.policy
}
