package holdem

import (
	"errors"
	"fmt"
)

// IllegalActionError is an action rejected without mutating any state. The
// message is safe to echo back to the acting player
type IllegalActionError string

func (e IllegalActionError) Error() string {
	return string(e)
}

func newIllegalAction(format string, a ...interface{}) IllegalActionError {
	return IllegalActionError(fmt.Sprintf(format, a...))
}

// ErrNotPlayersTurn is an error when a player acts out of turn
var ErrNotPlayersTurn = IllegalActionError("it is not your turn")

// ErrTableFull is an error when a player attempts to join a full table
var ErrTableFull = errors.New("table is full")

// ErrInsufficientPlayers is an error when a round cannot start because fewer
// than two players have chips
var ErrInsufficientPlayers = errors.New("not enough players with chips")

// ErrRoundInProgress is an error when a round is already being played
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrPlayerNotFound is an error when the player is not seated at the table
var ErrPlayerNotFound = errors.New("player not found")
