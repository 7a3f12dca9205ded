package holdem

import "github.com/sirupsen/logrus"

// actingParticipant returns the participant if it's their turn to act
func (g *Game) actingParticipant(id string) (*Participant, error) {
	if !g.InRound() {
		return nil, newIllegalAction("there is no betting round in progress")
	}

	if g.TurnPlayerID() != id {
		return nil, ErrNotPlayersTurn
	}

	return g.participants[id], nil
}

// Call matches the current bet. A short stack calls all-in for less
func (g *Game) Call(id string) (*Result, error) {
	p, err := g.actingParticipant(id)
	if err != nil {
		return nil, err
	}

	if g.currentBet <= p.streetBet {
		return nil, newIllegalAction("there is no bet to call")
	}

	amount := p.commit(g.currentBet - p.streetBet)
	g.log.WithFields(logrus.Fields{"player": id, "amount": amount}).Debug("call")

	g.completeTurn()
	return g.afterAction()
}

// Check passes the action without betting
func (g *Game) Check(id string) (*Result, error) {
	p, err := g.actingParticipant(id)
	if err != nil {
		return nil, err
	}

	if p.streetBet < g.currentBet {
		return nil, newIllegalAction("you cannot check against an unmatched bet")
	}

	g.log.WithField("player", id).Debug("check")

	g.completeTurn()
	return g.afterAction()
}

// Raise puts in the amount needed to match the current bet plus amount on
// top, capped by the player's stack. Raising reopens the action for every
// other player still able to act
func (g *Game) Raise(id string, amount int) (*Result, error) {
	p, err := g.actingParticipant(id)
	if err != nil {
		return nil, err
	}

	if amount <= 0 {
		return nil, newIllegalAction("raise must be a positive amount")
	}

	g.log.WithFields(logrus.Fields{"player": id, "amount": amount}).Debug("raise")

	p.commit(g.currentBet - p.streetBet + amount)

	// a short all-in may not reach the current bet; only a genuine raise
	// moves the bet and restarts the action counter
	if p.streetBet > g.currentBet {
		g.currentBet = p.streetBet
		g.lastAggressorID = id
		g.actionStartIndex = g.seatIndexOf(id)
		g.actionAt = 0
	}

	g.completeTurn()
	return g.afterAction()
}

// Bet opens the betting for amount. It is equivalent to a raise over a
// current bet of zero
func (g *Game) Bet(id string, amount int) (*Result, error) {
	return g.Raise(id, amount)
}

// Fold surrenders the player's claim to every pot. Unlike the other actions
// a fold is accepted out of turn, so a disconnecting player can always be
// folded; it never reports a turn error
func (g *Game) Fold(id string) (*Result, error) {
	p, ok := g.participants[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	if !g.InRound() || !p.dealtIn || p.folded || p.left {
		return nil, newIllegalAction("you have no hand to fold")
	}

	g.log.WithField("player", id).Debug("fold")

	wasTurn := g.TurnPlayerID() == id
	g.playerFolded(p, wasTurn)

	return g.takeResult(), nil
}

// playerFolded removes the player from contention and advances the round.
// Shared by Fold and by a mid-round departure
func (g *Game) playerFolded(p *Participant, wasTurn bool) {
	p.folded = true

	// if the last aggressor folds before anyone matched their bet, the
	// eventual winner takes the pot without showing
	if g.lastAggressorID == p.ID {
		matched := false
		for _, id := range g.seatOrder {
			other := g.participants[id]
			if other.isContender() && other.streetBet >= g.currentBet {
				matched = true
				break
			}
		}

		if !matched {
			g.lastAggressorID = ""
		}
	}

	if g.contenderCount() <= 1 {
		g.settle()
		return
	}

	if wasTurn {
		g.completeTurn()
		if g.actionAt >= len(g.seatOrder) {
			g.closeStreet()
		}
	}
}

// afterAction closes the street once every player has responded
func (g *Game) afterAction() (*Result, error) {
	if g.actionAt >= len(g.seatOrder) {
		g.closeStreet()
	}

	return g.takeResult(), nil
}

// closeStreet folds the street bets into the round totals and advances the
// round: deal the next board cards, or settle after the river. When no
// further betting is possible the remaining streets cascade until showdown
func (g *Game) closeStreet() {
	for _, p := range g.participants {
		p.roundBet += p.streetBet
		p.streetBet = 0
	}
	g.currentBet = 0
	g.lastAggressorID = ""

	var draw int
	switch g.street {
	case StreetPreflop:
		g.street = StreetFlop
		draw = 3
	case StreetFlop:
		g.street = StreetTurn
		draw = 1
	case StreetTurn:
		g.street = StreetRiver
		draw = 1
	case StreetRiver:
		g.settle()
		return
	default:
		return
	}

	if err := g.dealBoard(draw); err != nil {
		g.abortRound(err)
		return
	}

	// action starts at the first live seat past the dealer
	g.actionStartIndex = g.nextIndex(g.dealerIndex)
	g.actionAt = 0
	g.skipToActor()

	g.log.WithFields(logrus.Fields{
		"street": g.street.String(),
		"board":  g.board.String(),
	}).Debug("street dealt")

	if !g.bettingPossible() {
		g.closeStreet()
	}
}

func (g *Game) dealBoard(count int) error {
	for i := 0; i < count; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.board.AddCard(card)
	}

	return nil
}

func (g *Game) seatIndexOf(id string) int {
	for i, seatID := range g.seatOrder {
		if seatID == id {
			return i
		}
	}

	return -1
}
