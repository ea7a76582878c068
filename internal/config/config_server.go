// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the reference server's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(cfg)
}

// NewServerConfig maps the server fields of cfg and validates them.
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	server := cfg.Server
	if server.HTTPAddress == "" {
		server.HTTPAddress = DefaultServerAddress
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  server,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
