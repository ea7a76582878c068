// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructured() *StructuredConfig {
	cfg := defaults()
	cfg.App.EncryptionPassphrase = "passphrase"
	cfg.App.TokenSignKey = "sign"
	cfg.App.PasswordHashKey = "hash"
	cfg.Storage.DB.DSN = "postgres://localhost/sync"
	return cfg
}

// ── client ────────────────────────────────────────────────────────────────────

func TestNewClientConfig_Valid(t *testing.T) {
	cfg, err := NewClientConfig(validStructured())
	require.NoError(t, err)

	assert.Equal(t, DefaultEntityTypes, cfg.Sync.EntityTypes)
	assert.Equal(t, DefaultMaxAttempts, cfg.Sync.MaxAttempts)
	assert.Equal(t, DefaultServerAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, "passphrase", cfg.App.EncryptionPassphrase)
}

func TestNewClientConfig_DefaultDSN(t *testing.T) {
	s := validStructured()
	s.Storage.DB.DSN = ""

	cfg, err := NewClientConfig(s)
	require.NoError(t, err)
	assert.Equal(t, DefaultClientDSN, cfg.Storage.DB.DSN)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{name: "no adapter address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no entity types", mutate: func(c *StructuredConfig) { c.Sync.EntityTypes = nil }, want: ErrInvalidSyncConfigs},
		{name: "zero attempts", mutate: func(c *StructuredConfig) { c.Sync.MaxAttempts = 0 }, want: ErrInvalidSyncConfigs},
		{name: "retry max below base", mutate: func(c *StructuredConfig) { c.Sync.RetryMax = 1 }, want: ErrInvalidSyncConfigs},
		{name: "zero sync interval", mutate: func(c *StructuredConfig) { c.Workers.SyncInterval = 0 }, want: ErrInvalidWorkerConfigs},
		{name: "sensitive fields without passphrase", mutate: func(c *StructuredConfig) { c.App.EncryptionPassphrase = "" }, want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStructured()
			tt.mutate(s)

			_, err := NewClientConfig(s)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewClientConfig_NoSensitiveFieldsNeedsNoPassphrase(t *testing.T) {
	s := validStructured()
	s.Sync.SensitiveFields = nil
	s.App.EncryptionPassphrase = ""

	_, err := NewClientConfig(s)
	assert.NoError(t, err)
}

// ── server ────────────────────────────────────────────────────────────────────

func TestNewServerConfig_Valid(t *testing.T) {
	cfg, err := NewServerConfig(validStructured())
	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
}

func TestNewServerConfig_JoinsErrors(t *testing.T) {
	s := validStructured()
	s.Storage.DB.DSN = ""
	s.App.TokenSignKey = ""

	_, err := NewServerConfig(s)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
