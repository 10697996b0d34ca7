// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-npmrc/internal/registry"
)

// NerfDart converts a registry URL into the key prefix used for its
// credentials: "//" + host[:port] + the directory part of the path.
//
// Scheme, userinfo, query and fragment are dropped, and a path not ending
// in '/' is cut back to its last '/':
//
//	https://registry.npmjs.org/pkg?write=true#x -> //registry.npmjs.org/
//	https://h:5984/a/b/pkg                      -> //h:5984/a/b/
func NerfDart(u *url.URL) string {
	path := u.EscapedPath()
	if !strings.HasSuffix(path, "/") {
		if idx := strings.LastIndex(path, "/"); idx >= 0 {
			path = path[:idx+1]
		} else {
			path = "/"
		}
	}

	return "//" + registry.CanonicalHost(u) + path
}

// DecodePassword decodes a base64 _password value.
func DecodePassword(encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	if !utf8.Valid(decoded) {
		return "", ErrInvalidUTF8
	}
	return string(decoded), nil
}

// ParseLegacyAuth decodes an _auth value into username and password. The
// decoded text is split on the first ':' only, so passwords may contain ':'.
// Without any ':' the whole text is the username and the password is empty.
func ParseLegacyAuth(auth string) (string, string, error) {
	decoded, err := DecodePassword(auth)
	if err != nil {
		return "", "", err
	}

	username, password, _ := strings.Cut(decoded, ":")
	return username, password, nil
}
