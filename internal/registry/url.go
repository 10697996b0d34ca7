// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// DefaultRegistry is the public npm registry.
const DefaultRegistry = "https://registry.npmjs.org/"

const scopeRegistrySuffix = ":registry"

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// ParseURL parses a registry URL after making sure it ends with '/'.
//
// The result has a lower-cased host and no explicit default port, so
// "https://Registry.Example.com:443" and "https://registry.example.com/"
// produce the same URL.
func ParseURL(raw string) (*url.URL, error) {
	normalized := raw
	if !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidURL, raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w %q: absolute URL with a host expected", ErrInvalidURL, raw)
	}

	u.Host = CanonicalHost(u)
	return u, nil
}

// Default returns a fresh copy of [DefaultRegistry].
func Default() *url.URL {
	u, _ := ParseURL(DefaultRegistry)
	return u
}

// CanonicalHost returns u's host lower-cased, without the port when it is
// the scheme's default one.
func CanonicalHost(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if port == defaultPorts[u.Scheme] {
		port = ""
	}

	if port == "" {
		if strings.Contains(host, ":") {
			return "[" + host + "]"
		}
		return host
	}
	return net.JoinHostPort(host, port)
}

// ExtractScope returns the scope of a package name: everything up to the
// first '/' for names starting with '@', or the whole name when it has no
// '/'. Unscoped names report false.
func ExtractScope(pkg string) (string, bool) {
	if !strings.HasPrefix(pkg, "@") {
		return "", false
	}

	scope, _, _ := strings.Cut(pkg, "/")
	return scope, true
}

// ScopeKey returns the config key holding a scope's registry, e.g.
// "@myorg" -> "@myorg:registry".
func ScopeKey(scope string) string {
	return scope + scopeRegistrySuffix
}

// ScopeFromKey is the inverse of [ScopeKey]. It reports false for keys that
// do not start with '@' or do not end with ":registry".
func ScopeFromKey(key string) (string, bool) {
	if !strings.HasPrefix(key, "@") || !strings.HasSuffix(key, scopeRegistrySuffix) {
		return "", false
	}
	return strings.TrimSuffix(key, scopeRegistrySuffix), true
}
