package game

import "errors"

var (
	// ErrInvalidTurn is returned when an action targets a seat that cannot act now
	ErrInvalidTurn = errors.New("game: invalid turn")

	// ErrConfiguration is returned when a session cannot start as configured
	ErrConfiguration = errors.New("game: configuration error")

	// ErrNotStarted is returned when actions are applied before Start
	ErrNotStarted = errors.New("game: session not started")

	// ErrSessionStarted is returned when membership changes after Start
	ErrSessionStarted = errors.New("game: session already started")

	// ErrUnknownAction is returned for anything other than hit or stand
	ErrUnknownAction = errors.New("game: unknown action")
)
