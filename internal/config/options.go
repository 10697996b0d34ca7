// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// LoadOptions controls layer discovery in [Loader.Load].
//
// Struct tags:
//   - env - npm environment variable overriding the field (caarlos0/env).
//     Variables are matched case-insensitively, so both npm_config_prefix
//     and NPM_CONFIG_PREFIX set GlobalPrefix.
//
// Explicitly set fields take priority over the environment. Fields left
// empty after both sources are discovered through the [paths.Locator].
type LoadOptions struct {
	// Cwd is the directory the project root search starts from.
	// Defaults to the process working directory.
	Cwd string

	// GlobalPrefix is the npm global install prefix. Defaults to the prefix
	// derived from the node executable.
	// Env: npm_config_prefix
	GlobalPrefix string `env:"NPM_CONFIG_PREFIX"`

	// GlobalConfig replaces {GlobalPrefix}/etc/npmrc as the global file.
	// Env: npm_config_globalconfig
	GlobalConfig string `env:"NPM_CONFIG_GLOBALCONFIG"`

	// UserConfig replaces ~/.npmrc as the user file.
	// Env: npm_config_userconfig
	UserConfig string `env:"NPM_CONFIG_USERCONFIG"`

	// SkipProject, SkipUser and SkipGlobal leave the corresponding layer
	// absent without looking at the filesystem.
	SkipProject bool
	SkipUser    bool
	SkipGlobal  bool
}
