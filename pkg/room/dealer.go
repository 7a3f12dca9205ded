package room

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/holdem"
)

// Dealer runs a single table. All game access happens on the dealer's run
// loop, so the game itself never needs a lock
type Dealer struct {
	pitBoss *PitBoss
	uuid    string
	log     logrus.FieldLogger

	game *holdem.Game

	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool

	// nextRound is the pending timer between rounds; run loop only
	nextRound *time.Timer
}

// NewDealer creates a new dealer for the table
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, tableUUID string) *Dealer {
	log := pitBoss.log.WithField("table", tableUUID)

	game, err := holdem.New(log, pitBoss.gameOptions)
	if err != nil {
		// the options were validated when the pit boss was created
		panic(err)
	}

	return &Dealer{
		pitBoss:       pitBoss,
		uuid:          tableUUID,
		log:           log,
		game:          game,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// UUID returns the table identifier
func (d *Dealer) UUID() string {
	return d.uuid
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) runLoop() {
	d.log.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.cancelNextRound()
			d.log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient seats the player at the table
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		if err := d.game.AddPlayer(client.PlayerID, client.Name); err != nil {
			client.Send(newErrorResponse("", err))
			if errors.Is(err, holdem.ErrTableFull) {
				client.CloseWithReason(err.Error())
			}

			return
		}

		d.broadcastState()
		d.scheduleNextRound()
	}
}

// RemoveClient removes the client from the table. The player's hand is
// forfeited if a round is running
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients == 0 {
		return true
	}

	d.execInRunLoop <- func() {
		result, err := d.game.RemovePlayer(client.PlayerID)
		if err != nil {
			d.log.WithError(err).WithField("player", client.PlayerID).Warn("could not remove player")
			return
		}

		d.broadcastState()
		if result != nil {
			d.broadcastShowdown(result)
		}

		if d.game.CanStartRound() {
			d.scheduleNextRound()
		} else if !d.game.InRound() {
			d.cancelNextRound()
		}
	}

	return false
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	d.execInRunLoop <- func() {
		result, err := d.performAction(c, msg)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(OK(msg.Context))
		d.broadcastState()

		if result != nil {
			d.broadcastShowdown(result)
			d.scheduleNextRound()
		}
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) performAction(c *Client, msg *PayloadIn) (*holdem.Result, error) {
	switch msg.Action {
	case "check":
		return d.game.Check(c.PlayerID)
	case "call":
		return d.game.Call(c.PlayerID)
	case "bet":
		return d.game.Bet(c.PlayerID, msg.Amount)
	case "raise":
		return d.game.Raise(c.PlayerID, msg.Amount)
	case "fold":
		return d.game.Fold(c.PlayerID)
	}

	return nil, fmt.Errorf("unknown action: %s", msg.Action)
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcastState() {
	for _, client := range d.Clients() {
		client.Send(&Response{
			Key:  "state",
			Data: d.game.StateFor(client.PlayerID),
		})
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcastShowdown(result *holdem.Result) {
	for _, client := range d.Clients() {
		client.Send(&Response{
			Key:  "showdown",
			Data: result,
		})
	}
}

// scheduleNextRound arms the between-round timer. Does nothing if a round
// is running, already scheduled, or cannot be played
// NOTE: must only be called from the run loop
func (d *Dealer) scheduleNextRound() {
	if d.nextRound != nil || !d.game.CanStartRound() {
		return
	}

	d.nextRound = time.AfterFunc(d.pitBoss.roundDelay, func() {
		d.execInRunLoop <- d.startNextRound
	})
}

// NOTE: must only be called from the run loop
func (d *Dealer) cancelNextRound() {
	if d.nextRound != nil {
		d.nextRound.Stop()
		d.nextRound = nil
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) startNextRound() {
	d.nextRound = nil

	result, err := d.game.StartRound()
	if err != nil {
		// players may have left while the timer was pending
		d.log.WithError(err).Debug("round not started")
		return
	}

	d.broadcastState()
	if result != nil {
		d.broadcastShowdown(result)
		d.scheduleNextRound()
	}
}
