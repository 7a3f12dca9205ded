package mux

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableHandlers(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var created tableResponse
	assertPost(t, ts, "/table", nil, &created, 201)
	assert.NotEqual(t, "", created.UUID)

	var list tableListResponse
	assertGet(t, ts, "/table", &list, 200)
	assert.Contains(t, list.Tables, created.UUID)
}

func TestTableWebSocket(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var created tableResponse
	assertPost(t, ts, "/table", nil, &created, 201)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")

	// unknown tables are a 404 before the upgrade
	_, resp, err := websocket.DefaultDialer.Dial(wsURL+"/table/00000000-0000-0000-0000-000000000000/ws", nil)
	require.Equal(t, websocket.ErrBadHandshake, err)
	assert.Equal(t, 404, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"/table/"+created.UUID+"/ws?name=Alice", nil)
	require.NoError(t, err)
	defer conn.Close()

	// joining broadcasts the table state
	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "state", msg["key"])

	data := msg["data"].(map[string]interface{})
	players := data["players"].([]interface{})
	require.Equal(t, 1, len(players))
	assert.Equal(t, "Alice", players[0].(map[string]interface{})["name"])
}
