package holdem

import "encoding/json"

// Street represents the phase of a round
type Street int

// constants for Street, in strict order. StreetWaiting means no round is
// being played
const (
	StreetWaiting Street = iota
	StreetPreflop
	StreetFlop
	StreetTurn
	StreetRiver
	StreetShowdown
)

func (s Street) String() string {
	switch s {
	case StreetWaiting:
		return "waiting"
	case StreetPreflop:
		return "preflop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	case StreetShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
