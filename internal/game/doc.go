// Package game implements the turn and scoring rules for a multiplayer game of 21.
//
// The main type is Casino, which owns the deck and the ordered list of players
// and tracks whose turn it is. Players act in turn by hitting (taking a card) or
// standing (dropping out). A player whose points reach the stop threshold
// (21 by default) is stopped automatically. The game is over once nobody is
// active.
//
// # Basic Usage
//
//	c := game.NewCasino(randutil.New(42))
//	c.AddPlayer(game.NewPlayer("Alice"))
//	c.AddPlayer(game.NewPlayer("Bob"))
//	if err := c.Start(); err != nil {
//	    return err
//	}
//	outcome, err := c.Hit()
//
// ApplyAction addresses a seat explicitly and fails with ErrInvalidTurn if
// that seat is not the one to act:
//
//	_, err := c.ApplyAction(1, game.Stand)
//	if errors.Is(err, game.ErrInvalidTurn) {
//	    // ignore the input
//	}
//
// # Deterministic Testing
//
// Supply a stacked deck to control every card dealt:
//
//	d := deck.FromCards(rng, cards, deck.WithReplenish(deck.ReplenishOrdered))
//	c := game.NewCasino(rng, game.WithDeck(d))
//
// # Presentation
//
// The casino never draws anything. Shells read Snapshot and subscribe to the
// EventBus to render state and narrate actions.
package game
