package holdem

import "sort"

// Pot is a single pot with the players eligible to win it. Folded players
// fund pots through their contributions but are never eligible
type Pot struct {
	Amount            int      `json:"amount"`
	EligiblePlayerIDs []string `json:"eligiblePlayerIds"`
}

// calculatePots converts each player's total contribution into one or more
// pots, smallest all-in level first. For each distinct contribution level,
// the pot holds (level - previousLevel) chips from every player who put in
// at least that much; eligibility requires matching the level without
// folding. The amounts always sum to the total contributed
func calculatePots(participants []*Participant) []*Pot {
	levels := make([]int, 0, len(participants))
	seen := make(map[int]bool)
	for _, p := range participants {
		contributed := p.contributed()
		if contributed > 0 && !seen[contributed] {
			seen[contributed] = true
			levels = append(levels, contributed)
		}
	}

	sort.Ints(levels)

	pots := make([]*Pot, 0, len(levels))
	prevLevel := 0
	for _, level := range levels {
		amount := 0
		eligible := make([]string, 0, len(participants))
		for _, p := range participants {
			if p.contributed() >= level {
				amount += level - prevLevel

				if p.isContender() {
					eligible = append(eligible, p.ID)
				}
			}
		}

		pots = append(pots, &Pot{
			Amount:            amount,
			EligiblePlayerIDs: eligible,
		})

		prevLevel = level
	}

	return pots
}
