package poker

import (
	"math"
	"sort"

	"holdem-server/pkg/deck"
)

// HandAnalyzer scores a set of cards into the best hand they can make.
// It accepts anywhere from size to 7 cards (2 hole cards plus up to 5
// community cards) and produces a category plus a tiebreak key so that any
// two analyzed hands are totally ordered by Compare.
type HandAnalyzer struct {
	size  int
	cards []*deck.Card
	flush []int
	quads []int
	trips []int
	pairs []int

	straight      int
	straightFlush int

	hand     Hand
	tiebreak []int
}

// New will return a new HandAnalyzer instance
func New(size int, cards []*deck.Card) *HandAnalyzer {
	newCards := make([]*deck.Card, len(cards))
	copy(newCards, cards)

	sort.Sort(sort.Reverse(sortByRank(newCards)))

	h := &HandAnalyzer{
		size:  size,
		cards: newCards,
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()
	h.buildTiebreak()

	return h
}

// analyzeHand will loop through the cards and calculate the various combinations
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	suitRanks := make(map[deck.Suit][]int)

	// keeps track of pairs, trips, and quads
	prevRank := math.MaxInt8
	numOfRank := 0

	nCards := len(h.cards)
	for i, card := range h.cards {
		ranks := append(suitRanks[card.Suit], card.Rank)
		suitRanks[card.Suit] = ranks

		if h.flush == nil && len(ranks) == h.size {
			// sorted descending, so the first size ranks of the suit are the best
			h.flush = ranks[0:h.size]
		}

		isLastCard := i+1 == nCards
		h.checkGroups(card, &prevRank, &numOfRank, isLastCard)
	}

	h.straight = bestStraight(h.distinctRanks(), h.size)

	for _, ranks := range suitRanks {
		if len(ranks) >= h.size {
			h.straightFlush = bestStraight(ranks, h.size)
		}
	}
}

func (h *HandAnalyzer) checkGroups(card *deck.Card, prevRank, numOfRank *int, isLastCard bool) {
	if card.Rank == *prevRank {
		*numOfRank++
	}

	// if the card is no longer the same rank, or we're at the end,
	// check the longest group of cards we can form
	if card.Rank != *prevRank || isLastCard {
		switch *numOfRank {
		case 4:
			h.quads = append(h.quads, *prevRank)
		case 3:
			h.trips = append(h.trips, *prevRank)
		case 2:
			h.pairs = append(h.pairs, *prevRank)
		}

		*numOfRank = 1
	}

	*prevRank = card.Rank
}

// distinctRanks returns the distinct ranks, sorted descending
func (h *HandAnalyzer) distinctRanks() []int {
	ranks := make([]int, 0, len(h.cards))
	prev := 0
	for _, card := range h.cards {
		if card.Rank != prev {
			ranks = append(ranks, card.Rank)
			prev = card.Rank
		}
	}

	return ranks
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetStraightFlush will return the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// GetFourOfAKind will return the best four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the best full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	trips := h.trips[0]

	pair, ok := h.GetPair()
	if !ok {
		if len(h.trips) == 1 {
			// could not find a pair from a second set of trips
			return nil, false
		}

		pair = h.trips[1]
	} else if len(h.trips) >= 2 && h.trips[1] > pair {
		// in a 7-card hand, we may have two sets of trips and a separate pair.
		// in that case, make sure we grab the better pair from the trips
		pair = h.trips[1]
	}

	return []int{trips, pair}, true
}

// GetFlush will return the best possible flush, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush != nil {
		return h.flush, true
	}

	return nil, false
}

// GetStraight will return the best straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the best two pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the high card
func (h *HandAnalyzer) GetHighCard() (int, bool) {
	return h.cards[0].Rank, true
}

// Tiebreak returns the ordered rank values used to compare hands within the
// same category
func (h *HandAnalyzer) Tiebreak() []int {
	return h.tiebreak
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}

// buildTiebreak assembles the tiebreak key: grouped ranks first, then the
// kickers descending. For straights only the high card matters; for flushes
// and high cards, the best five ranks
func (h *HandAnalyzer) buildTiebreak() {
	switch h.hand {
	case StraightFlush:
		h.tiebreak = []int{h.straightFlush}
	case FourOfAKind:
		h.tiebreak = append([]int{h.quads[0]}, h.kickers(1, h.quads[0])...)
	case FullHouse:
		fh, _ := h.GetFullHouse()
		h.tiebreak = fh
	case Flush:
		h.tiebreak = h.flush
	case Straight:
		h.tiebreak = []int{h.straight}
	case ThreeOfAKind:
		h.tiebreak = append([]int{h.trips[0]}, h.kickers(2, h.trips[0])...)
	case TwoPair:
		h.tiebreak = append([]int{h.pairs[0], h.pairs[1]}, h.kickers(1, h.pairs[0], h.pairs[1])...)
	case OnePair:
		h.tiebreak = append([]int{h.pairs[0]}, h.kickers(3, h.pairs[0])...)
	case HighCard:
		h.tiebreak = h.kickers(h.size)
	}
}

// kickers returns up to n card ranks, descending, skipping any excluded ranks
func (h *HandAnalyzer) kickers(n int, exclude ...int) []int {
	kickers := make([]int, 0, n)

Cards:
	for _, card := range h.cards {
		for _, ex := range exclude {
			if card.Rank == ex {
				continue Cards
			}
		}

		kickers = append(kickers, card.Rank)
		if len(kickers) == n {
			break
		}
	}

	return kickers
}

// Compare compares two analyzed hands. The result is positive if a is the
// stronger hand, negative if b is stronger, and zero for an exact tie
// (a split pot). Category wins first; otherwise the tiebreak keys are
// compared element-wise with missing elements treated as zero.
func Compare(a, b *HandAnalyzer) int {
	if a.hand != b.hand {
		return int(a.hand) - int(b.hand)
	}

	n := len(a.tiebreak)
	if len(b.tiebreak) > n {
		n = len(b.tiebreak)
	}

	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(a.tiebreak) {
			av = a.tiebreak[i]
		}
		if i < len(b.tiebreak) {
			bv = b.tiebreak[i]
		}

		if av != bv {
			return av - bv
		}
	}

	return 0
}
