package room

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/holdem"
)

// PitBoss owns the tables and dispatches players to them
type PitBoss struct {
	log         logrus.FieldLogger
	gameOptions holdem.Options
	roundDelay  time.Duration

	lock    sync.Mutex
	dealers map[string]*Dealer

	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(log logrus.FieldLogger, gameOptions holdem.Options, roundDelay time.Duration) (*PitBoss, error) {
	if err := gameOptions.Validate(); err != nil {
		return nil, err
	}

	return &PitBoss{
		log:         log,
		gameOptions: gameOptions,
		roundDelay:  roundDelay,
		dealers:     make(map[string]*Dealer),
		connect:     make(chan *Client, 256),
		disconnect:  make(chan *Client, 256),
	}, nil
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// CreateTable opens a new table and returns its UUID
func (p *PitBoss) CreateTable() string {
	tableUUID := uuid.New().String()
	dealer := NewDealer(p, tableUUID)
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[tableUUID] = dealer
	p.lock.Unlock()

	p.log.WithField("table", tableUUID).Info("table created")
	return tableUUID
}

// Dealer returns the dealer running the given table
func (p *PitBoss) Dealer(tableUUID string) (*Dealer, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	dealer, found := p.dealers[tableUUID]
	return dealer, found
}

// TableUUIDs returns the UUIDs of the open tables
func (p *PitBoss) TableUUIDs() []string {
	p.lock.Lock()
	defer p.lock.Unlock()

	uuids := make([]string, 0, len(p.dealers))
	for tableUUID := range p.dealers {
		uuids = append(uuids, tableUUID)
	}

	return uuids
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			p.log.WithField("player", client.String()).Debug("client connected")
			dealer, found := p.Dealer(client.tableUUID)
			if !found {
				p.log.WithField("table", client.tableUUID).Warn("table not found")
				client.CloseWithReason("table not found")
				continue
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			p.log.WithField("player", client.String()).Debug("client disconnected")
			dealer, found := p.Dealer(client.tableUUID)
			if !found {
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()

				p.lock.Lock()
				delete(p.dealers, client.tableUUID)
				p.lock.Unlock()

				p.log.WithField("table", client.tableUUID).Info("table closed")
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
