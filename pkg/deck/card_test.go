package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	assert.Equal(t, "10♢", (&Card{Rank: 10, Suit: Diamonds}).String())
	assert.Equal(t, "J♡", (&Card{Rank: Jack, Suit: Hearts}).String())
	assert.Equal(t, "Q♠", (&Card{Rank: Queen, Suit: Spades}).String())
	assert.Equal(t, "K♣", (&Card{Rank: King, Suit: Clubs}).String())
	assert.Equal(t, "A♠", (&Card{Rank: Ace, Suit: Spades}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("14s")
	a.Equal(Ace, card.Rank)
	a.Equal(Spades, card.Suit)

	card = CardFromString("2c")
	a.Equal(2, card.Rank)
	a.Equal(Clubs, card.Suit)

	a.Nil(CardFromString(""))

	a.PanicsWithValue("could not parse card: 15s", func() {
		CardFromString("15s")
	})

	a.PanicsWithValue("could not parse card: 2x", func() {
		CardFromString("2x")
	})
}

func TestCardsToString_roundTrip(t *testing.T) {
	cards := CardsFromString("2c,10d,11h,14s")
	assert.Equal(t, "2c,10d,11h,14s", CardsToString(cards))
	assert.Equal(t, 4, len(cards))
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5c").Equal(CardFromString("5c")))
	a.False(CardFromString("5c").Equal(CardFromString("5d")))
	a.False(CardFromString("5c").Equal(CardFromString("6c")))
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, CardFromString("14s").AceLowRank())
	assert.Equal(t, 13, CardFromString("13s").AceLowRank())
}
