package holdem

import (
	"errors"

	"holdem-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Options configures how a table plays
type Options struct {
	SmallBlind    int
	BigBlind      int
	StartingStack int
	MaxPlayers    int
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		SmallBlind:    5,
		BigBlind:      10,
		StartingStack: 100,
		MaxPlayers:    6,
	}
}

// Validate ensures the options describe a playable game
func (o Options) Validate() error {
	if o.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if o.BigBlind < o.SmallBlind {
		return errors.New("big blind must be >= small blind")
	}

	if o.StartingStack < o.BigBlind {
		return errors.New("starting stack must cover the big blind")
	}

	if o.MaxPlayers < 2 {
		return errors.New("table must seat at least two players")
	}

	return nil
}

// Game is a multi-seat game of no-limit Texas Hold'em. A Game survives
// across rounds; every mutation must come from a single goroutine
type Game struct {
	log     logrus.FieldLogger
	options Options

	participants map[string]*Participant
	seatOrder    []string
	dealerIndex  int

	deck   *deck.Deck
	street Street
	board  deck.Hand

	currentBet      int
	lastAggressorID string

	// actionStartIndex is the seat where the street's action started, or
	// restarted after a raise. actionAt counts decisions consumed since then;
	// once it reaches the seat count, every player has responded
	actionStartIndex int
	actionAt         int

	// pots holds the ledger from the last settlement, for display only
	pots       []*Pot
	revealed   bool
	lastResult *Result
}

// New returns a new game with no seated players
func New(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		log:          logger,
		options:      opts,
		participants: make(map[string]*Participant),
		seatOrder:    make([]string, 0, opts.MaxPlayers),
		dealerIndex:  -1,
		street:       StreetWaiting,
	}, nil
}

// Options returns the table options
func (g *Game) Options() Options {
	return g.options
}

// InRound returns true while a betting street is being played
func (g *Game) InRound() bool {
	return g.street >= StreetPreflop && g.street <= StreetRiver
}

// Street returns the current street
func (g *Game) Street() Street {
	return g.street
}

// AddPlayer seats a new player. Joining mid-round is allowed; the player is
// dealt in at the next round
func (g *Game) AddPlayer(id, name string) error {
	if _, ok := g.participants[id]; ok {
		return errors.New("player is already seated")
	}

	if len(g.seatOrder) >= g.options.MaxPlayers {
		return ErrTableFull
	}

	g.participants[id] = newParticipant(id, name, g.options.StartingStack)
	g.seatOrder = append(g.seatOrder, id)

	g.log.WithFields(logrus.Fields{"player": id, "name": name}).Info("player seated")
	return nil
}

// RemovePlayer removes a player from the table. Leaving mid-round forfeits
// any chips already committed; they stay in the pot. If the departure leaves
// a single contender the round settles immediately and the result is returned
func (g *Game) RemovePlayer(id string) (*Result, error) {
	p, ok := g.participants[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	g.log.WithField("player", id).Info("player left")

	if !g.InRound() || !p.dealtIn {
		g.unseat(id)
		return nil, nil
	}

	wasTurn := g.TurnPlayerID() == id
	p.left = true
	g.playerFolded(p, wasTurn)

	return g.takeResult(), nil
}

// unseat removes a player outside of a round
func (g *Game) unseat(id string) {
	delete(g.participants, id)
	for i, seatID := range g.seatOrder {
		if seatID == id {
			g.seatOrder = append(g.seatOrder[:i], g.seatOrder[i+1:]...)
			if i <= g.dealerIndex && g.dealerIndex >= 0 {
				g.dealerIndex--
			}
			break
		}
	}
}

// purgeLeft drops players who left during the previous round
func (g *Game) purgeLeft() {
	for _, id := range append([]string{}, g.seatOrder...) {
		if g.participants[id].left {
			g.unseat(id)
		}
	}
}

// PlayerCount returns the number of seated players
func (g *Game) PlayerCount() int {
	return len(g.seatOrder)
}

func (g *Game) playersWithChips() int {
	count := 0
	for _, p := range g.participants {
		if !p.left && p.stack > 0 {
			count++
		}
	}

	return count
}

// CanStartRound returns true if a new round could be dealt right now
func (g *Game) CanStartRound() bool {
	return !g.InRound() && g.playersWithChips() >= 2
}

// StartRound shuffles, rotates the button, posts blinds, and deals. In the
// degenerate case where the blinds put everyone all-in, the board runs out
// immediately and the returned result is non-nil
func (g *Game) StartRound() (*Result, error) {
	if g.InRound() {
		return nil, ErrRoundInProgress
	}

	g.purgeLeft()

	if g.playersWithChips() < 2 {
		g.street = StreetWaiting
		return nil, ErrInsufficientPlayers
	}

	g.lastResult = nil
	g.board = nil
	g.pots = nil
	g.revealed = false
	g.currentBet = 0
	g.lastAggressorID = ""

	for _, p := range g.participants {
		p.newRound()
	}

	g.deck = deck.New()
	g.deck.Shuffle(0)

	g.dealerIndex = g.nextIndexWithChips(g.dealerIndex)

	dealtIn := 0
	for _, id := range g.seatOrder {
		p := g.participants[id]
		if p.stack > 0 {
			p.dealtIn = true
			dealtIn++
		}
	}

	dealer := g.seatAt(g.dealerIndex)
	dealer.role = RoleDealer

	// heads-up, the dealer posts the small blind and acts first pre-flop
	var sbIndex int
	if dealtIn == 2 {
		sbIndex = g.dealerIndex
	} else {
		sbIndex = g.nextDealtInIndex(g.dealerIndex)
	}
	bbIndex := g.nextDealtInIndex(sbIndex)

	sb := g.seatAt(sbIndex)
	bb := g.seatAt(bbIndex)
	if sb.role == RoleNone {
		sb.role = RoleSmallBlind
	}
	bb.role = RoleBigBlind

	g.street = StreetPreflop

	if err := g.dealHoleCards(); err != nil {
		g.abortRound(err)
		return nil, err
	}

	// blinds are forced commitments; a short stack posts all-in
	sb.commit(g.options.SmallBlind)
	bb.commit(g.options.BigBlind)
	g.currentBet = g.options.BigBlind

	g.actionStartIndex = g.nextIndex(bbIndex)
	g.actionAt = 0
	g.skipToActor()

	g.log.WithFields(logrus.Fields{
		"dealer": dealer.ID,
		"seed":   g.deck.GetSeed(),
		"seats":  dealtIn,
	}).Info("round started")

	if !g.bettingPossible() {
		g.closeStreet()
	}

	return g.takeResult(), nil
}

// dealHoleCards deals two cards to each dealt-in player, one at a time
func (g *Game) dealHoleCards() error {
	for i := 0; i < 2; i++ {
		for _, id := range g.seatOrder {
			p := g.participants[id]
			if !p.dealtIn {
				continue
			}

			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.cards.AddCard(card)
		}
	}

	return nil
}

func (g *Game) seatAt(index int) *Participant {
	n := len(g.seatOrder)
	return g.participants[g.seatOrder[((index%n)+n)%n]]
}

// nextIndex returns the next seat index, wrapping
func (g *Game) nextIndex(from int) int {
	return (from + 1) % len(g.seatOrder)
}

// nextIndexWithChips returns the next seat index holding chips
func (g *Game) nextIndexWithChips(from int) int {
	n := len(g.seatOrder)
	for i := 1; i <= n; i++ {
		index := ((from+i)%n + n) % n
		if g.seatAt(index).stack > 0 {
			return index
		}
	}

	panic("no players with chips")
}

// nextDealtInIndex returns the next seat index dealt into the round
func (g *Game) nextDealtInIndex(from int) int {
	n := len(g.seatOrder)
	for i := 1; i <= n; i++ {
		index := (from + i) % n
		if g.seatAt(index).dealtIn {
			return index
		}
	}

	panic("no players dealt in")
}

// skipToActor advances the action counter past seats that cannot act
func (g *Game) skipToActor() {
	n := len(g.seatOrder)
	for ; g.actionAt < n; g.actionAt++ {
		if g.seatAt(g.actionStartIndex + g.actionAt).canAct() {
			return
		}
	}
}

// completeTurn must be called after a player checks, calls, bets, raises,
// or folds in turn
func (g *Game) completeTurn() {
	g.actionAt++
	g.skipToActor()
}

// TurnPlayerID returns the id of the player who must act, or "" when no
// action is pending
func (g *Game) TurnPlayerID() string {
	if !g.InRound() || g.actionAt >= len(g.seatOrder) {
		return ""
	}

	return g.seatAt(g.actionStartIndex + g.actionAt).ID
}

func (g *Game) canActCount() int {
	count := 0
	for _, id := range g.seatOrder {
		if g.participants[id].canAct() {
			count++
		}
	}

	return count
}

func (g *Game) contenderCount() int {
	count := 0
	for _, id := range g.seatOrder {
		if g.participants[id].isContender() {
			count++
		}
	}

	return count
}

// bettingPossible returns false when the street cannot see any further
// action: nobody can act, or a single player can act and owes nothing
func (g *Game) bettingPossible() bool {
	var only *Participant
	for _, id := range g.seatOrder {
		p := g.participants[id]
		if !p.canAct() {
			continue
		}

		if only != nil {
			return true
		}
		only = p
	}

	return only != nil && only.streetBet < g.currentBet
}

func (g *Game) takeResult() *Result {
	result := g.lastResult
	g.lastResult = nil
	return result
}
