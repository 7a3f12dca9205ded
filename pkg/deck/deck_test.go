package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		seen[CardToString(card)] = true
	}
	a.Equal(52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(42)
	a.Equal(int64(42), d.GetSeed())

	d2 := New()
	d2.Shuffle(42)
	a.Equal(d.HashCode(), d2.HashCode())

	d3 := New()
	d3.Shuffle(43)
	a.NotEqual(d.HashCode(), d3.HashCode())

	// a shuffle must still be a permutation of the full deck
	seen := make(map[string]bool)
	for _, card := range d.Cards {
		seen[CardToString(card)] = true
	}
	a.Equal(52, len(seen))

	a.Panics(func() {
		d.Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	top := d.Cards[51]

	card, err := d.Draw()
	a.NoError(err)
	a.True(card.Equal(top))
	a.Equal(51, d.CardsLeft())

	for i := 0; i < 51; i++ {
		_, err := d.Draw()
		a.NoError(err)
	}

	a.Equal(0, d.CardsLeft())
	card, err = d.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}

func TestDeck_CanDraw(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	_, _ = d.Draw()
	a.True(d.CanDraw(51))
	a.False(d.CanDraw(52))
}
