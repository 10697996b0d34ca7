// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"npm_config_prefix":       "/opt/node",
		"npm_config_globalconfig": "/etc/npmrc",
		"npm_config_userconfig":   "/home/ci/.npmrc",
	}

	// Act
	opts := &LoadOptions{}
	err := parseEnv(opts, environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/opt/node", opts.GlobalPrefix)
	assert.Equal(t, "/etc/npmrc", opts.GlobalConfig)
	assert.Equal(t, "/home/ci/.npmrc", opts.UserConfig)
	assert.Empty(t, opts.Cwd)
	assert.False(t, opts.SkipProject)
	assert.False(t, opts.SkipUser)
	assert.False(t, opts.SkipGlobal)
}

func TestParseEnv_CaseInsensitiveNames(t *testing.T) {
	environ := map[string]string{
		"NPM_CONFIG_PREFIX":     "/upper",
		"Npm_Config_UserConfig": "/mixed",
	}

	opts := &LoadOptions{}
	require.NoError(t, parseEnv(opts, environ))

	assert.Equal(t, "/upper", opts.GlobalPrefix)
	assert.Equal(t, "/mixed", opts.UserConfig)
}

func TestParseEnv_LowerCaseWins(t *testing.T) {
	environ := map[string]string{
		"NPM_CONFIG_PREFIX": "/upper",
		"npm_config_prefix": "/lower",
	}

	// Map iteration order is random; repeat to cover both orders.
	for range 20 {
		opts := &LoadOptions{}
		require.NoError(t, parseEnv(opts, environ))
		assert.Equal(t, "/lower", opts.GlobalPrefix)
	}
}

func TestParseEnv_IgnoresUnrelatedVariables(t *testing.T) {
	environ := map[string]string{
		"HOME":             "/home/tester",
		"PREFIX":           "/should/not/apply",
		"npm_config_cache": "/tmp/cache",
	}

	opts := &LoadOptions{}
	require.NoError(t, parseEnv(opts, environ))
	assert.Equal(t, LoadOptions{}, *opts)
}

func TestNpmEnvironment(t *testing.T) {
	got := npmEnvironment(map[string]string{
		"npm_config_registry": "https://r.example.com/",
		"PATH":                "/usr/bin",
	})

	assert.Equal(t, map[string]string{"NPM_CONFIG_REGISTRY": "https://r.example.com/"}, got)
}

func TestEnvironFromOS(t *testing.T) {
	t.Setenv("GO_NPMRC_TEST_VAR", "a=b")

	environ := environFromOS()
	assert.Equal(t, "a=b", environ["GO_NPMRC_TEST_VAR"])
}
