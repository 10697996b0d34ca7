// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

const npmConfigEnvPrefix = "npm_config_"

// parseEnv populates opts from the npm_config_* entries of environ using the
// caarlos0/env library. Names are upper-cased first so the `env` tags on
// [LoadOptions] match any spelling; when two spellings of one variable are
// present the lower-case one wins, as it does for npm.
func parseEnv(opts *LoadOptions, environ map[string]string) error {
	err := env.ParseWithOptions(opts, env.Options{Environment: npmEnvironment(environ)})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func npmEnvironment(environ map[string]string) map[string]string {
	out := make(map[string]string)
	for name, value := range environ {
		lower := strings.ToLower(name)
		if !strings.HasPrefix(lower, npmConfigEnvPrefix) {
			continue
		}

		upper := strings.ToUpper(name)
		if _, seen := out[upper]; seen && name != lower {
			continue
		}
		out[upper] = value
	}
	return out
}

// environFromOS snapshots the process environment.
func environFromOS() map[string]string {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		environ[name] = value
	}
	return environ
}
