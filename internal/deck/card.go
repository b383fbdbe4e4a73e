package deck

import (
	"fmt"
	"strconv"
)

// Suit represents a card suit, numbered 1..4 in canonical order
type Suit int

const (
	Spades Suit = iota + 1
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are low (1); face cards are 11..13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Card is an immutable playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard decodes a canonical identifier (rank*10 + suit).
func NewCard(id int) (Card, error) {
	rank, suit := Rank(id/10), Suit(id%10)
	if rank < Ace || rank > King {
		return Card{}, fmt.Errorf("card %d: rank %d out of range", id, rank)
	}
	if suit < Spades || suit > Clubs {
		return Card{}, fmt.Errorf("card %d: suit %d out of range", id, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustCard is like NewCard but panics on an invalid identifier
func MustCard(id int) Card {
	c, err := NewCard(id)
	if err != nil {
		panic(err)
	}
	return c
}

// ID returns the canonical identifier for the card
func (c Card) ID() int {
	return int(c.Rank)*10 + int(c.Suit)
}

// Points returns the scoring value: the rank for A..9, ten for everything else
func (c Card) Points() int {
	return min(int(c.Rank), 10)
}

// String returns the string representation of a card (e.g., "K♣")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// AssetName is the display asset key for the card
func (c Card) AssetName() string {
	return fmt.Sprintf("card%d.png", c.ID())
}

// Standard returns all 52 cards in canonical order (rank major, suit minor)
func Standard() []Card {
	cards := make([]Card, 0, 52)
	for rank := Ace; rank <= King; rank++ {
		for suit := Spades; suit <= Clubs; suit++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}
