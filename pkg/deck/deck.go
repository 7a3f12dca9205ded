package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards.
// Hitting this during a round means more cards were dealt than exist; callers
// must treat it as an invariant violation, not a recoverable condition.
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle performs a Fisher–Yates shuffle over a freshly built deck.
// You can manually specify the seed, or you can leave it as 0 to seed from the clock.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the remaining cards
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw removes and returns the top card of the deck
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
