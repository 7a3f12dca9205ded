package holdem

import "holdem-server/pkg/deck"

// PlayerState is a player's seat as seen by one viewer. Cards is nil unless
// the viewer owns the seat or the round reached a showdown
type PlayerState struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stack     int       `json:"stack"`
	Cards     deck.Hand `json:"cards"`
	Folded    bool      `json:"folded"`
	AllIn     bool      `json:"allIn"`
	Role      Role      `json:"role"`
	StreetBet int       `json:"streetBet"`
}

// TableState is the shared, public portion of the game state
type TableState struct {
	Street       Street    `json:"street"`
	Board        deck.Hand `json:"board"`
	Pots         []*Pot    `json:"pots"`
	CurrentBet   int       `json:"currentBet"`
	TurnPlayerID string    `json:"turnPlayerId"`
	Revealed     bool      `json:"revealed"`
}

// State is a snapshot of the table tailored to a single viewer
type State struct {
	Players []*PlayerState `json:"players"`
	Table   *TableState    `json:"table"`
}

// StateFor builds the snapshot sent to viewerID. Hole cards belonging to
// other players are stripped unless a showdown revealed them
func (g *Game) StateFor(viewerID string) *State {
	players := make([]*PlayerState, 0, len(g.seatOrder))
	for _, id := range g.seatOrder {
		p := g.participants[id]

		var cards deck.Hand
		if id == viewerID || (g.revealed && !p.folded) {
			cards = p.cards.Clone()
		}

		players = append(players, &PlayerState{
			ID:        p.ID,
			Name:      p.Name,
			Stack:     p.stack,
			Cards:     cards,
			Folded:    p.folded,
			AllIn:     p.allIn,
			Role:      p.role,
			StreetBet: p.streetBet,
		})
	}

	return &State{
		Players: players,
		Table: &TableState{
			Street:       g.street,
			Board:        g.board.Clone(),
			Pots:         g.currentPots(),
			CurrentBet:   g.currentBet,
			TurnPlayerID: g.TurnPlayerID(),
			Revealed:     g.revealed,
		},
	}
}

// currentPots returns the live ledger mid-round, or the final ledger after
// a settlement
func (g *Game) currentPots() []*Pot {
	if !g.InRound() {
		return g.pots
	}

	order := make([]*Participant, 0, len(g.seatOrder))
	for _, id := range g.seatOrder {
		order = append(order, g.participants[id])
	}

	return calculatePots(order)
}
