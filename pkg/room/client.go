package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// PlayerID uniquely identifies this connection; it doubles as the
	// player's seat id at the table
	PlayerID string

	// Name is the display name the player connected with
	Name string

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// send is a channel for sending messages to the client
	send chan interface{}

	tableUUID string
	dealer    *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID, name, tableUUID string) *Client {
	return &Client{
		Conn:      conn,
		PlayerID:  playerID,
		Name:      name,
		Close:     make(chan string, 1),
		send:      make(chan interface{}, 256),
		tableUUID: tableUUID,
	}
}

// Send sends a message to the web client. A client that cannot keep up has
// the message dropped rather than blocking the table
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// CloseWithReason asks the write loop to close the connection. It never
// blocks; a second close request is dropped
func (c *Client) CloseWithReason(reason string) bool {
	select {
	case c.Close <- reason:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and table
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.PlayerID, c.tableUUID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	c.dealer.ReceivedMessage(c, msg)
}
