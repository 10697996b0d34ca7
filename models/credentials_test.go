// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCert() *ClientCert {
	c := NewClientCert("/path/to/cert.pem", "/path/to/key.pem")
	return &c
}

// renderings collects every human-readable form a secret could leak through.
func renderings(t *testing.T, c Credentials) []string {
	t.Helper()

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Object("creds", c).Msg("resolved")

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	return []string{
		c.String(),
		c.GoString(),
		fmt.Sprintf("%v", c),
		fmt.Sprintf("%+v", c),
		fmt.Sprintf("%#v", c),
		fmt.Sprintf("%s", c),
		fmt.Sprintf("%q", c),
		fmt.Sprint(c),
		fmt.Sprintf("%+v", struct{ C Credentials }{c}),
		buf.String(),
		string(raw),
	}
}

func TestToken_Redaction(t *testing.T) {
	creds := NewToken("super-secret-token", nil)

	for _, out := range renderings(t, creds) {
		assert.NotContains(t, out, "super-secret-token")
		assert.Contains(t, out, Redacted)
	}
}

func TestBasicAuth_Redaction(t *testing.T) {
	creds := NewBasicAuth("myuser", "super-secret-password", testCert())

	for _, out := range renderings(t, creds) {
		assert.NotContains(t, out, "super-secret-password")
		assert.Contains(t, out, "myuser")
		assert.Contains(t, out, "/path/to/cert.pem")
	}
}

func TestLegacyAuth_Redaction(t *testing.T) {
	creds := NewLegacyAuth("c2VjcmV0LWF1dGgtc3RyaW5n", "legacyuser", "legacy-secret-password", nil)

	for _, out := range renderings(t, creds) {
		assert.NotContains(t, out, "c2VjcmV0LWF1dGgtc3RyaW5n")
		assert.NotContains(t, out, "legacy-secret-password")
		assert.Contains(t, out, "legacyuser")
	}
}

func TestClientCertOnly_ShowsPaths(t *testing.T) {
	creds := NewClientCertOnly(*testCert())

	assert.Equal(t,
		`ClientCertOnly(ClientCert{certfile: "/path/to/cert.pem", keyfile: "/path/to/key.pem"})`,
		creds.String())
	assert.Equal(t, creds.String(), fmt.Sprintf("%#v", creds))
}

func TestCredentials_Kinds(t *testing.T) {
	tests := []struct {
		creds Credentials
		kind  CredentialsKind
		name  string
	}{
		{creds: NewToken("t", nil), kind: KindToken, name: "token"},
		{creds: NewBasicAuth("u", "p", nil), kind: KindBasicAuth, name: "basic-auth"},
		{creds: NewLegacyAuth("a", "u", "p", nil), kind: KindLegacyAuth, name: "legacy-auth"},
		{creds: NewClientCertOnly(*testCert()), kind: KindClientCertOnly, name: "client-cert-only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.creds.Kind())
			assert.Equal(t, tt.name, tt.creds.Kind().String())
		})
	}
	assert.Equal(t, "unknown", CredentialsKind(0).String())
}

func TestCredentials_ClientCert(t *testing.T) {
	cert := testCert()

	got, ok := NewToken("t", cert).ClientCert()
	assert.True(t, ok)
	assert.Equal(t, *cert, got)

	_, ok = NewBasicAuth("u", "p", nil).ClientCert()
	assert.False(t, ok)

	got, ok = NewLegacyAuth("a", "u", "p", cert).ClientCert()
	assert.True(t, ok)
	assert.Equal(t, *cert, got)

	got, ok = NewClientCertOnly(*cert).ClientCert()
	assert.True(t, ok)
	assert.Equal(t, *cert, got)
}

func TestCredentials_CertIsCopied(t *testing.T) {
	cert := testCert()
	creds := NewToken("t", cert)

	cert.Certfile = "/tampered"

	got, ok := creds.ClientCert()
	require.True(t, ok)
	assert.Equal(t, "/path/to/cert.pem", got.Certfile)
}

func TestTokenOf(t *testing.T) {
	token, ok := TokenOf(NewToken("my-token", nil))
	assert.True(t, ok)
	assert.Equal(t, "my-token", token)

	_, ok = TokenOf(NewBasicAuth("u", "p", nil))
	assert.False(t, ok)

	_, ok = TokenOf(nil)
	assert.False(t, ok)
}

func TestUsernamePassword(t *testing.T) {
	u, p, ok := UsernamePassword(NewBasicAuth("user", "password", nil))
	assert.True(t, ok)
	assert.Equal(t, "user", u)
	assert.Equal(t, "password", p)

	u, p, ok = UsernamePassword(NewLegacyAuth("dXNlcjpwYXNzd29yZA==", "user", "password", nil))
	assert.True(t, ok)
	assert.Equal(t, "user", u)
	assert.Equal(t, "password", p)

	_, _, ok = UsernamePassword(NewToken("t", nil))
	assert.False(t, ok)
}

func TestBasicAuthHeader(t *testing.T) {
	header, ok := BasicAuthHeader(NewBasicAuth("user", "password", nil))
	assert.True(t, ok)
	assert.Equal(t, "dXNlcjpwYXNzd29yZA==", header)

	header, ok = BasicAuthHeader(NewLegacyAuth("raw-auth", "user", "password", nil))
	assert.True(t, ok)
	assert.Equal(t, "raw-auth", header)

	_, ok = BasicAuthHeader(NewClientCertOnly(*testCert()))
	assert.False(t, ok)
}

func TestAuthorizationHeader(t *testing.T) {
	header, ok := AuthorizationHeader(NewToken("abc", nil))
	assert.True(t, ok)
	assert.Equal(t, "Bearer abc", header)

	header, ok = AuthorizationHeader(NewBasicAuth("user", "password", nil))
	assert.True(t, ok)
	assert.Equal(t, "Basic dXNlcjpwYXNzd29yZA==", header)

	_, ok = AuthorizationHeader(NewClientCertOnly(*testCert()))
	assert.False(t, ok)
}

func TestCredentials_JSONShape(t *testing.T) {
	raw, err := json.Marshal(NewBasicAuth("myuser", "pw", testCert()))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "basic-auth",
		"username": "myuser",
		"password": "[REDACTED]",
		"cert": {"certfile": "/path/to/cert.pem", "keyfile": "/path/to/key.pem"}
	}`, string(raw))
}

func TestClientCert_Equality(t *testing.T) {
	assert.Equal(t, NewClientCert("a", "b"), NewClientCert("a", "b"))
	assert.True(t, NewClientCert("a", "b") == ClientCert{Certfile: "a", Keyfile: "b"})
	assert.NotEqual(t, NewClientCert("a", "b"), NewClientCert("a", "c"))
}
