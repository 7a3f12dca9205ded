package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-server/internal/util"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded    bool
	PublicDir string `yaml:"publicDir" envconfig:"public_dir"`
	Log       struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		SmallBlind      int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind        int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingStack   int `yaml:"startingStack" envconfig:"starting_stack"`
		MaxPlayers      int `yaml:"maxPlayers" envconfig:"max_players"`
		StartRoundDelay int `yaml:"startRoundDelay" envconfig:"start_round_delay"`
	}
}

var config Config

func defaults() Config {
	var c Config
	c.Log.Level = "info"
	c.Game.SmallBlind = 5
	c.Game.BigBlind = 10
	c.Game.StartingStack = 100
	c.Game.MaxPlayers = 6
	c.Game.StartRoundDelay = 3

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults and environment variables still apply
func Load() error {
	config = defaults()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
