package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// HUB_ADDR points the suite at an externally running hub; when empty
	// the suite starts an in-process one on a throwaway store.
	HubAddr string `envconfig:"HUB_ADDR"`
	// E2E_DEBUG_FRAMES allows dumping every websocket frame as JSON
	DebugFrames bool `envconfig:"E2E_DEBUG_FRAMES" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
