package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

func TestParticipant_commit(t *testing.T) {
	p := newParticipant("a", "a", 100)

	assert.Equal(t, 30, p.commit(30))
	assert.Equal(t, 70, p.Stack())
	assert.Equal(t, 30, p.streetBet)
	assert.False(t, p.allIn)

	// committing more than the stack caps at the stack
	assert.Equal(t, 70, p.commit(500))
	assert.Equal(t, 0, p.Stack())
	assert.Equal(t, 100, p.streetBet)
	assert.True(t, p.allIn)
}

func TestParticipant_canAct(t *testing.T) {
	p := newParticipant("a", "a", 100)
	assert.False(t, p.canAct())

	p.dealtIn = true
	assert.True(t, p.canAct())
	assert.True(t, p.isContender())

	p.allIn = true
	assert.False(t, p.canAct())
	assert.True(t, p.isContender())

	p.allIn = false
	p.folded = true
	assert.False(t, p.canAct())
	assert.False(t, p.isContender())
}

func TestParticipant_newRound(t *testing.T) {
	p := newParticipant("a", "a", 100)
	p.dealtIn = true
	p.commit(40)
	p.roundBet = 25
	p.folded = true
	p.role = RoleBigBlind
	p.cards = deck.Hand(deck.CardsFromString("2c,3d"))

	p.newRound()
	assert.Equal(t, 60, p.Stack())
	assert.Equal(t, 0, p.streetBet)
	assert.Equal(t, 0, p.roundBet)
	assert.Nil(t, p.cards)
	assert.False(t, p.folded)
	assert.False(t, p.dealtIn)
	assert.Equal(t, RoleNone, p.role)
}

func TestParticipant_getHandAnalyzer(t *testing.T) {
	p := newParticipant("a", "a", 100)
	assert.Nil(t, p.getHandAnalyzer(nil))

	p.cards = deck.Hand(deck.CardsFromString("14c,14d"))
	board := deck.Hand(deck.CardsFromString("14h,7c,8d,2s,3s"))

	ha := p.getHandAnalyzer(board)
	assert.Equal(t, poker.ThreeOfAKind, ha.GetHand())

	// cached until the board changes
	assert.True(t, ha == p.getHandAnalyzer(board))

	board.AddCard(deck.CardFromString("14s"))
	assert.Equal(t, poker.FourOfAKind, p.getHandAnalyzer(board).GetHand())
}
