package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func contributor(id string, roundBet int) *Participant {
	return &Participant{ID: id, dealtIn: true, roundBet: roundBet}
}

func TestCalculatePots(t *testing.T) {
	a := contributor("a", 50)
	a.allIn = true
	b := contributor("b", 100)
	c := contributor("c", 100)

	pots := calculatePots([]*Participant{a, b, c})
	assert.Equal(t, 2, len(pots))

	assert.Equal(t, 150, pots[0].Amount)
	assert.Equal(t, []string{"a", "b", "c"}, pots[0].EligiblePlayerIDs)

	assert.Equal(t, 100, pots[1].Amount)
	assert.Equal(t, []string{"b", "c"}, pots[1].EligiblePlayerIDs)
}

func TestCalculatePots_singleLevel(t *testing.T) {
	pots := calculatePots([]*Participant{
		contributor("a", 20),
		contributor("b", 20),
		contributor("c", 20),
	})

	assert.Equal(t, 1, len(pots))
	assert.Equal(t, 60, pots[0].Amount)
	assert.Equal(t, []string{"a", "b", "c"}, pots[0].EligiblePlayerIDs)
}

func TestCalculatePots_foldedContributor(t *testing.T) {
	a := contributor("a", 30)
	a.folded = true
	b := contributor("b", 100)
	c := contributor("c", 100)

	pots := calculatePots([]*Participant{a, b, c})
	assert.Equal(t, 2, len(pots))

	// the folded player funds the first pot but cannot win it
	assert.Equal(t, 90, pots[0].Amount)
	assert.Equal(t, []string{"b", "c"}, pots[0].EligiblePlayerIDs)

	assert.Equal(t, 140, pots[1].Amount)
	assert.Equal(t, []string{"b", "c"}, pots[1].EligiblePlayerIDs)
}

func TestCalculatePots_conservation(t *testing.T) {
	participants := []*Participant{
		contributor("a", 13),
		contributor("b", 40),
		contributor("c", 40),
		contributor("d", 7),
		contributor("e", 0),
	}

	total := 0
	for _, p := range participants {
		total += p.roundBet
	}

	potTotal := 0
	for _, pot := range calculatePots(participants) {
		potTotal += pot.Amount
	}

	assert.Equal(t, total, potTotal)
}
