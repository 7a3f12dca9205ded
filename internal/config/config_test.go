package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_GAME_BIG_BLIND", "20")
	defer clear2()
	defer func() { config = Config{} }()

	a := assert.New(t)
	assert.NoError(t, Load())
	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal("/var/www/holdem", cfg.PublicDir)
	a.Equal(1, cfg.Game.SmallBlind)
	a.Equal(20, cfg.Game.BigBlind)
	a.Equal(5, cfg.Game.StartRoundDelay)

	// unspecified keys keep their defaults
	a.Equal(100, cfg.Game.StartingStack)
	a.Equal(6, cfg.Game.MaxPlayers)

	// ensure it's only loaded once
	_ = os.Setenv("HOLDEM_GAME_BIG_BLIND", "30")
	// ensure we aren't using a pointer
	cfg.Game.BigBlind = 999
	cfg = Instance()
	a.Equal(20, cfg.Game.BigBlind)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()
	defer func() { config = Config{} }()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 5, cfg.Game.SmallBlind)
	assert.Equal(t, 10, cfg.Game.BigBlind)
	assert.Equal(t, "info", cfg.Log.Level)
}
