package poker

import "holdem-server/pkg/deck"

// bestStraight returns the high card of the best run of size consecutive
// distinct ranks, or 0 if no such run exists. The ranks must be distinct and
// sorted descending. An Ace also plays low, so 5-4-3-2-A is a 5-high straight.
func bestStraight(ranks []int, size int) int {
	if len(ranks) > 0 && ranks[0] == deck.Ace {
		ranks = append(ranks, deck.LowAce)
	}

	start := 0
	for i := 1; i <= len(ranks); i++ {
		if i < len(ranks) && ranks[i] == ranks[i-1]-1 {
			continue
		}

		// the runs are visited highest first, so the first long enough run wins
		if i-start >= size {
			return ranks[start]
		}

		start = i
	}

	return 0
}
