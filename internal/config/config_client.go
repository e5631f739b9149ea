package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the vaultctl transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the go-key-vault server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the vaultctl configuration assembled from
// [StructuredConfig]. Only transport settings are exposed to the client; key
// material and storage settings never leave the server process.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view.
//
// Unlike [GetStructuredConfig] it skips server-side validation: the client
// only needs a reachable server address, not a database or installation salt.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		buildUnvalidated()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
