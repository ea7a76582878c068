// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	var errs []error

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if len(cfg.Sync.EntityTypes) == 0 || cfg.Sync.MaxAttempts < 1 || cfg.Sync.PushConcurrency < 1 ||
		cfg.Sync.RetryBase < 0 || cfg.Sync.RetryMax < cfg.Sync.RetryBase {
		errs = append(errs, ErrInvalidSyncConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ProbeInterval <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	if len(cfg.Sync.SensitiveFields) > 0 && cfg.App.EncryptionPassphrase == "" {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	return errors.Join(errs...)
}

func (cfg *ServerConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.PasswordHashKey == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}
