package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line client, assembled
// from environment variables and the optional JSON file.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter Adapter
}

// GetClientConfig builds and validates a client-specific config view.
//
// Command-line flags are not parsed here: the client binary owns its own
// flag set.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: Adapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = 10 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
