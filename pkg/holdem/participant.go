package holdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

// Role identifies the forced-bet role a seat holds for the current round
type Role string

// role constants
const (
	RoleNone       Role = "none"
	RoleDealer     Role = "dealer"
	RoleSmallBlind Role = "small-blind"
	RoleBigBlind   Role = "big-blind"
)

// Participant is a player seated at the table
type Participant struct {
	// ID is the stable connection id the player joined with
	ID   string
	Name string

	stack     int
	streetBet int
	roundBet  int
	cards     deck.Hand

	folded  bool
	allIn   bool
	dealtIn bool
	// left is true once the player leaves the table mid-round; their
	// contributed chips stay in the pot
	left bool
	role Role

	handAnalyzer         *poker.HandAnalyzer
	handAnalyzerCacheKey string
}

func newParticipant(id, name string, stack int) *Participant {
	return &Participant{
		ID:    id,
		Name:  name,
		stack: stack,
		role:  RoleNone,
	}
}

// Stack returns the chips the player has not committed this round
func (p *Participant) Stack() int {
	return p.stack
}

// commit moves up to amount chips from the stack into the street bet and
// returns how much actually moved. Exhausting the stack marks the player
// all-in
func (p *Participant) commit(amount int) int {
	if amount > p.stack {
		amount = p.stack
	}

	p.stack -= amount
	p.streetBet += amount

	if p.stack == 0 {
		p.allIn = true
	}

	return amount
}

// contributed returns everything the player has put into the round so far
func (p *Participant) contributed() int {
	return p.roundBet + p.streetBet
}

// canAct returns true if the player may check, call, bet, raise, or fold
func (p *Participant) canAct() bool {
	return p.dealtIn && !p.folded && !p.allIn && !p.left
}

// isContender returns true if the player can still win a pot this round
func (p *Participant) isContender() bool {
	return p.dealtIn && !p.folded && !p.left
}

// newRound resets the per-round state. Chips and identity survive
func (p *Participant) newRound() {
	p.streetBet = 0
	p.roundBet = 0
	p.cards = nil
	p.folded = false
	p.allIn = false
	p.dealtIn = false
	p.role = RoleNone
	p.handAnalyzer = nil
	p.handAnalyzerCacheKey = ""
}

// getHandAnalyzer analyzes the player's best hand from their hole cards and
// the board, caching per board state
func (p *Participant) getHandAnalyzer(board deck.Hand) *poker.HandAnalyzer {
	if len(p.cards) == 0 {
		return nil
	}

	hand := append(p.cards.Clone(), board...)
	key := hand.String()
	if p.handAnalyzerCacheKey != key {
		p.handAnalyzer = poker.New(5, hand)
		p.handAnalyzerCacheKey = key
	}

	return p.handAnalyzer
}
