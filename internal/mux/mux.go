package mux

import (
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/config"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	pitBoss, err := room.NewPitBoss(logrus.StandardLogger(), holdem.Options{
		SmallBlind:    cfg.Game.SmallBlind,
		BigBlind:      cfg.Game.BigBlind,
		StartingStack: cfg.Game.StartingStack,
		MaxPlayers:    cfg.Game.MaxPlayers,
	}, time.Second*time.Duration(cfg.Game.StartRoundDelay))
	if err != nil {
		logrus.WithError(err).Fatal("invalid game configuration")
	}

	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableUUIDWS())

	if cfg.PublicDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.PublicDir)))
	}

	return this
}
