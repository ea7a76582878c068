// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, a KEY=VALUE map. Variable names come
// from the env and envPrefix tags of [StructuredConfig]; a variable that is
// set but empty counts as unset.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	opts := env.Options{Environment: make(map[string]string, len(environ))}
	for k, v := range environ {
		if v != "" {
			opts.Environment[k] = v
		}
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

func processEnviron() map[string]string {
	return env.ToMap(os.Environ())
}
