package holdem

import (
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/poker"
)

// Winner is a player who won chips at settlement
type Winner struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Amount   int    `json:"amount"`
	// Hand names the winning hand, or is empty when the pot was won
	// without a showdown
	Hand string `json:"hand"`
}

// Result describes how a finished round paid out
type Result struct {
	Winners []*Winner `json:"winners"`
	Pots    []*Pot    `json:"pots"`
}

// settle ends the round: build the pot ledger, find each pot's best hand,
// and pay the winners. Every chip contributed this round is paid back out.
// When a pot splits unevenly the odd chips go one at a time to the winners
// closest to the start of the seat order
func (g *Game) settle() {
	for _, p := range g.participants {
		p.roundBet += p.streetBet
		p.streetBet = 0
	}
	g.currentBet = 0
	g.lastAggressorID = ""

	order := make([]*Participant, 0, len(g.seatOrder))
	contenders := make([]*Participant, 0, len(g.seatOrder))
	for _, id := range g.seatOrder {
		p := g.participants[id]
		order = append(order, p)
		if p.isContender() {
			contenders = append(contenders, p)
		}
	}

	pots := calculatePots(order)
	g.revealed = len(contenders) > 1

	payouts := make(map[string]int)
	for _, pot := range pots {
		winners := g.potWinners(pot, contenders)

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, w := range winners {
			amount := share
			if i < remainder {
				amount++
			}

			w.stack += amount
			payouts[w.ID] += amount
		}
	}

	result := &Result{Pots: pots}
	for _, p := range order {
		amount, ok := payouts[p.ID]
		if !ok {
			continue
		}

		winner := &Winner{
			PlayerID: p.ID,
			Name:     p.Name,
			Amount:   amount,
		}
		if g.revealed {
			winner.Hand = p.getHandAnalyzer(g.board).GetHand().String()
		}

		result.Winners = append(result.Winners, winner)

		g.log.WithFields(logrus.Fields{
			"player": p.ID,
			"amount": amount,
			"hand":   winner.Hand,
		}).Info("pot awarded")
	}

	for _, p := range order {
		p.roundBet = 0
	}

	g.pots = pots
	g.street = StreetShowdown
	g.lastResult = result
}

// potWinners returns the pot's winners in seat order. A pot whose eligible
// players all abandoned the round falls back to every remaining contender
func (g *Game) potWinners(pot *Pot, contenders []*Participant) []*Participant {
	eligible := make([]*Participant, 0, len(pot.EligiblePlayerIDs))
	for _, id := range pot.EligiblePlayerIDs {
		eligible = append(eligible, g.participants[id])
	}

	if len(eligible) == 0 {
		eligible = contenders
	}

	if len(eligible) == 1 {
		return eligible
	}

	var winners []*Participant
	var best *poker.HandAnalyzer
	for _, p := range eligible {
		ha := p.getHandAnalyzer(g.board)
		if best == nil {
			winners = []*Participant{p}
			best = ha
			continue
		}

		switch result := poker.Compare(ha, best); {
		case result > 0:
			winners = []*Participant{p}
			best = ha
		case result == 0:
			winners = append(winners, p)
		}
	}

	return winners
}

// abortRound unwinds a round that cannot continue, such as an exhausted
// deck. Committed chips are returned to their owners
func (g *Game) abortRound(err error) {
	g.log.WithError(err).Error("round aborted")

	for _, p := range g.participants {
		p.stack += p.streetBet + p.roundBet
		p.streetBet = 0
		p.roundBet = 0
		p.allIn = p.stack == 0
	}

	g.board = nil
	g.pots = nil
	g.currentBet = 0
	g.lastAggressorID = ""
	g.revealed = false
	g.lastResult = nil
	g.street = StreetWaiting
}
