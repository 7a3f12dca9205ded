package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_StateFor_redactsHoleCards(t *testing.T) {
	g := newTestGame(t, "a", "b")
	_, err := g.StartRound()
	require.NoError(t, err)

	state := g.StateFor("a")
	require.Equal(t, 2, len(state.Players))
	assert.Equal(t, 2, len(state.Players[0].Cards))
	assert.Nil(t, state.Players[1].Cards)

	state = g.StateFor("b")
	assert.Nil(t, state.Players[0].Cards)
	assert.Equal(t, 2, len(state.Players[1].Cards))

	// spectators see nothing
	state = g.StateFor("")
	assert.Nil(t, state.Players[0].Cards)
	assert.Nil(t, state.Players[1].Cards)

	assert.Equal(t, StreetPreflop, state.Table.Street)
	assert.Equal(t, "a", state.Table.TurnPlayerID)
	assert.Equal(t, 10, state.Table.CurrentBet)
	assert.False(t, state.Table.Revealed)

	require.Equal(t, 2, len(state.Table.Pots))
	assert.Equal(t, 10, state.Table.Pots[0].Amount)
	assert.Equal(t, 5, state.Table.Pots[1].Amount)
}

func TestGame_StateFor_showdownRevealsContenders(t *testing.T) {
	g := newTestGame(t, "a", "b", "c")
	_, err := g.StartRound()
	require.NoError(t, err)

	rig(g, "10c,11d,12h,13s,14d", map[string]string{
		"a": "2c,3h",
		"c": "2d,3s",
	})

	_, err = g.Fold("b")
	require.NoError(t, err)
	_, err = g.Call("a")
	require.NoError(t, err)

	for g.InRound() {
		_, err = g.Check(g.TurnPlayerID())
		require.NoError(t, err)
	}

	state := g.StateFor("")
	assert.True(t, state.Table.Revealed)
	assert.Equal(t, StreetShowdown, state.Table.Street)
	assert.Equal(t, 5, len(state.Table.Board))
	assert.Equal(t, "", state.Table.TurnPlayerID)

	// contenders are face up, the folded player stays hidden
	assert.Equal(t, 2, len(state.Players[0].Cards))
	assert.Nil(t, state.Players[1].Cards)
	assert.Equal(t, 2, len(state.Players[2].Cards))
}

func TestState_marshalsCleanly(t *testing.T) {
	g := newTestGame(t, "a", "b")
	_, err := g.StartRound()
	require.NoError(t, err)

	raw, err := json.Marshal(g.StateFor("a"))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "players")
	assert.Contains(t, decoded, "table")

	table := decoded["table"].(map[string]interface{})
	assert.Equal(t, "preflop", table["street"])
}
