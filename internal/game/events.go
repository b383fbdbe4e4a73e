package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/casino21/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeSessionStart EventType = "session_start"
	EventTypePlayerAction EventType = "player_action"
	EventTypeTurnChange   EventType = "turn_change"
	EventTypeGameOver     EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a session
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// SessionStartEvent is published once when Start succeeds
type SessionStartEvent struct {
	SessionID string
	Players   []string
	StopAt    int
	timestamp time.Time
}

func (e SessionStartEvent) EventType() EventType { return EventTypeSessionStart }
func (e SessionStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published after a hit or stand has been applied
type PlayerActionEvent struct {
	Seat      int
	Player    string
	Action    Action
	Card      deck.Card // zero for Stand
	Points    int
	Stopped   bool // player became inactive
	Busted    bool // a hit took the player to the stop threshold or beyond
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// TurnChangeEvent is published when the turn passes to another seat
type TurnChangeEvent struct {
	From      int
	To        int
	Player    string
	timestamp time.Time
}

func (e TurnChangeEvent) EventType() EventType { return EventTypeTurnChange }
func (e TurnChangeEvent) Timestamp() time.Time { return e.timestamp }

// Standing is a player's final score
type Standing struct {
	Player string
	Points int
}

// GameOverEvent is published when the last active player stops
type GameOverEvent struct {
	SessionID string
	Standings []Standing
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

// EventFormatter renders events as single log lines
type EventFormatter struct {
	// Card formats a card; defaults to Card.String
	Card func(deck.Card) string
}

// Format returns a human-readable line for any known event
func (ef EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case SessionStartEvent:
		return fmt.Sprintf("New game: %s (stop at %d)", strings.Join(e.Players, ", "), e.StopAt)
	case PlayerActionEvent:
		return ef.formatAction(e)
	case TurnChangeEvent:
		return fmt.Sprintf("%s to act", e.Player)
	case GameOverEvent:
		parts := make([]string, len(e.Standings))
		for i, s := range e.Standings {
			parts[i] = fmt.Sprintf("%s %d", s.Player, s.Points)
		}
		return "Game over: " + strings.Join(parts, ", ")
	default:
		return event.EventType().String()
	}
}

func (ef EventFormatter) formatAction(e PlayerActionEvent) string {
	if e.Action == Stand {
		return fmt.Sprintf("%s: stands on %d", e.Player, e.Points)
	}

	card := e.Card.String()
	if ef.Card != nil {
		card = ef.Card(e.Card)
	}
	line := fmt.Sprintf("%s: hits %s (%d)", e.Player, card, e.Points)
	if e.Busted {
		line += " and busts"
	}
	return line
}
