// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"

	"github.com/MKhiriev/go-npmrc/internal/auth"
	"github.com/MKhiriev/go-npmrc/internal/logger"
	"github.com/MKhiriev/go-npmrc/internal/registry"
	"github.com/MKhiriev/go-npmrc/models"
)

// locations is the filesystem context resolved during a load.
type locations struct {
	globalPrefix string
	localPrefix  string
	home         string
}

// Config is the merged view over the loaded layers. It is immutable and
// safe for concurrent use; reload to pick up file or environment changes.
type Config struct {
	// GlobalPrefix is the npm global prefix, empty when it could not be
	// determined.
	GlobalPrefix string
	// LocalPrefix is the project root the project layer was looked up in.
	LocalPrefix string
	// Home is the user's home directory, empty when unknown.
	Home string

	global  *Layer
	user    *Layer
	project *Layer

	registries  *registry.Resolver
	credentials *auth.Resolver
}

func newConfig(loc locations, global, user, project *Layer, log *logger.Logger) *Config {
	c := &Config{
		GlobalPrefix: loc.globalPrefix,
		LocalPrefix:  loc.localPrefix,
		Home:         loc.home,
		global:       global,
		user:         user,
		project:      project,
	}
	c.registries = registry.NewResolver(c)
	c.credentials = auth.NewResolver(c, loc.home, log.WithComponent("auth"))
	return c
}

// Get returns the value of key from the highest-priority layer defining it:
// project, then user, then global.
func (c *Config) Get(key string) (string, bool) {
	for _, layer := range c.Layers() {
		if v, ok := layer.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// Layers returns the present layers in priority order, project first.
func (c *Config) Layers() []*Layer {
	layers := make([]*Layer, 0, 3)
	for _, layer := range []*Layer{c.project, c.user, c.global} {
		if layer != nil {
			layers = append(layers, layer)
		}
	}
	return layers
}

// HasProjectConfig reports whether a project .npmrc was loaded.
func (c *Config) HasProjectConfig() bool { return c.project != nil }

// HasUserConfig reports whether a user .npmrc was loaded.
func (c *Config) HasUserConfig() bool { return c.user != nil }

// HasGlobalConfig reports whether a global npmrc was loaded.
func (c *Config) HasGlobalConfig() bool { return c.global != nil }

// ProjectConfigPath returns the source of the project layer.
func (c *Config) ProjectConfigPath() (string, bool) { return sourceOf(c.project) }

// UserConfigPath returns the source of the user layer.
func (c *Config) UserConfigPath() (string, bool) { return sourceOf(c.user) }

// GlobalConfigPath returns the source of the global layer.
func (c *Config) GlobalConfigPath() (string, bool) { return sourceOf(c.global) }

// DefaultRegistry returns the configured "registry", or the public npm
// registry when it is unset or does not parse.
func (c *Config) DefaultRegistry() *url.URL {
	return c.registries.Default()
}

// RegistryFor returns the registry that serves pkg.
func (c *Config) RegistryFor(pkg string) *url.URL {
	return c.registries.For(pkg)
}

// ScopedRegistries returns every "@scope:registry" entry across all present
// layers. Layers are applied global, user, project, so a scope defined in
// several layers maps to its highest-priority URL. Entries that do not parse
// are skipped.
func (c *Config) ScopedRegistries() map[string]*url.URL {
	result := make(map[string]*url.URL)
	for _, layer := range []*Layer{c.global, c.user, c.project} {
		if layer == nil {
			continue
		}
		for key, value := range layer.data {
			scope, ok := registry.ScopeFromKey(key)
			if !ok {
				continue
			}
			if u, err := registry.ParseURL(value); err == nil {
				result[scope] = u
			}
		}
	}
	return result
}

// CredentialsFor returns the credentials configured for registryURL.
func (c *Config) CredentialsFor(registryURL *url.URL) (models.Credentials, bool) {
	return c.credentials.CredentialsFor(registryURL)
}

// RegistryAndCredentials resolves the registry for pkg together with its
// credentials.
func (c *Config) RegistryAndCredentials(pkg string) (*url.URL, models.Credentials, bool) {
	u := c.RegistryFor(pkg)
	creds, ok := c.CredentialsFor(u)
	return u, creds, ok
}

func sourceOf(layer *Layer) (string, bool) {
	if layer == nil {
		return "", false
	}
	return layer.source, true
}
