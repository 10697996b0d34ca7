// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Redacted replaces secret material (tokens, passwords, raw _auth strings)
// in every printed, logged or serialized form of [Credentials].
const Redacted = "[REDACTED]"

// CredentialsKind tells the [Credentials] variants apart.
type CredentialsKind uint8

const (
	// KindToken is bearer token authentication (_authToken).
	KindToken CredentialsKind = iota + 1
	// KindBasicAuth is username plus base64 _password authentication.
	KindBasicAuth
	// KindLegacyAuth is the legacy _auth field holding base64 "username:password".
	KindLegacyAuth
	// KindClientCertOnly is mutual TLS without any other mechanism.
	KindClientCertOnly
)

// String returns a human-readable name for the kind.
func (k CredentialsKind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindBasicAuth:
		return "basic-auth"
	case KindLegacyAuth:
		return "legacy-auth"
	case KindClientCertOnly:
		return "client-cert-only"
	default:
		return "unknown"
	}
}

// Credentials is the authentication material resolved for one registry.
//
// The set of implementations is closed: [Token], [BasicAuth], [LegacyAuth]
// and [ClientCertOnly]. Every implementation redacts its secrets in all fmt
// verbs, in zerolog output and in JSON. None of them is comparable with ==,
// so secrets cannot be compared by accident.
type Credentials interface {
	// Kind reports which variant this is.
	Kind() CredentialsKind
	// ClientCert returns the mTLS certificate attached to the credentials.
	ClientCert() (ClientCert, bool)

	fmt.Stringer
	fmt.GoStringer
	fmt.Formatter
	json.Marshaler
	zerolog.LogObjectMarshaler

	sealed()
}

// noCompare makes the containing struct non-comparable.
type noCompare [0]func()

// Token is bearer token authentication.
type Token struct {
	_     noCompare
	token string
	cert  *ClientCert
}

// NewToken builds [Token] credentials. cert may be nil.
func NewToken(token string, cert *ClientCert) Token {
	return Token{token: token, cert: copyCert(cert)}
}

// Token returns the bearer token.
func (t Token) Token() string { return t.token }

// Kind implements [Credentials].
func (t Token) Kind() CredentialsKind { return KindToken }

// ClientCert implements [Credentials].
func (t Token) ClientCert() (ClientCert, bool) { return derefCert(t.cert) }

// String implements [fmt.Stringer] without revealing the token.
func (t Token) String() string {
	return fmt.Sprintf("Token{token: %s, cert: %s}", Redacted, certString(t.cert))
}

// GoString implements [fmt.GoStringer].
func (t Token) GoString() string { return t.String() }

// Format implements [fmt.Formatter].
func (t Token) Format(f fmt.State, verb rune) { writeRedacted(f, verb, t.String()) }

// MarshalJSON implements [json.Marshaler].
func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(redactedView{Type: KindToken.String(), Token: Redacted, Cert: t.cert})
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (t Token) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", KindToken.String()).Str("token", Redacted)
	logCert(e, t.cert)
}

func (Token) sealed() {}

// BasicAuth is username and password authentication. The password has
// already been decoded from the base64 _password value.
type BasicAuth struct {
	_        noCompare
	username string
	password string
	cert     *ClientCert
}

// NewBasicAuth builds [BasicAuth] credentials. cert may be nil.
func NewBasicAuth(username, password string, cert *ClientCert) BasicAuth {
	return BasicAuth{username: username, password: password, cert: copyCert(cert)}
}

// Username returns the user name.
func (b BasicAuth) Username() string { return b.username }

// Password returns the decoded password.
func (b BasicAuth) Password() string { return b.password }

// Kind implements [Credentials].
func (b BasicAuth) Kind() CredentialsKind { return KindBasicAuth }

// ClientCert implements [Credentials].
func (b BasicAuth) ClientCert() (ClientCert, bool) { return derefCert(b.cert) }

// String implements [fmt.Stringer] without revealing the password.
func (b BasicAuth) String() string {
	return fmt.Sprintf("BasicAuth{username: %q, password: %s, cert: %s}", b.username, Redacted, certString(b.cert))
}

// GoString implements [fmt.GoStringer].
func (b BasicAuth) GoString() string { return b.String() }

// Format implements [fmt.Formatter].
func (b BasicAuth) Format(f fmt.State, verb rune) { writeRedacted(f, verb, b.String()) }

// MarshalJSON implements [json.Marshaler].
func (b BasicAuth) MarshalJSON() ([]byte, error) {
	return json.Marshal(redactedView{
		Type:     KindBasicAuth.String(),
		Username: b.username,
		Password: Redacted,
		Cert:     b.cert,
	})
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (b BasicAuth) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", KindBasicAuth.String()).Str("username", b.username).Str("password", Redacted)
	logCert(e, b.cert)
}

func (BasicAuth) sealed() {}

// LegacyAuth comes from the _auth field: base64 "username:password".
type LegacyAuth struct {
	_        noCompare
	auth     string
	username string
	password string
	cert     *ClientCert
}

// NewLegacyAuth builds [LegacyAuth] credentials from the raw _auth value and
// its decoded parts. cert may be nil.
func NewLegacyAuth(auth, username, password string, cert *ClientCert) LegacyAuth {
	return LegacyAuth{auth: auth, username: username, password: password, cert: copyCert(cert)}
}

// Auth returns the raw base64 _auth value.
func (l LegacyAuth) Auth() string { return l.auth }

// Username returns the decoded user name.
func (l LegacyAuth) Username() string { return l.username }

// Password returns the decoded password.
func (l LegacyAuth) Password() string { return l.password }

// Kind implements [Credentials].
func (l LegacyAuth) Kind() CredentialsKind { return KindLegacyAuth }

// ClientCert implements [Credentials].
func (l LegacyAuth) ClientCert() (ClientCert, bool) { return derefCert(l.cert) }

// String implements [fmt.Stringer] without revealing the auth string or password.
func (l LegacyAuth) String() string {
	return fmt.Sprintf("LegacyAuth{auth: %s, username: %q, password: %s, cert: %s}",
		Redacted, l.username, Redacted, certString(l.cert))
}

// GoString implements [fmt.GoStringer].
func (l LegacyAuth) GoString() string { return l.String() }

// Format implements [fmt.Formatter].
func (l LegacyAuth) Format(f fmt.State, verb rune) { writeRedacted(f, verb, l.String()) }

// MarshalJSON implements [json.Marshaler].
func (l LegacyAuth) MarshalJSON() ([]byte, error) {
	return json.Marshal(redactedView{
		Type:     KindLegacyAuth.String(),
		Auth:     Redacted,
		Username: l.username,
		Password: Redacted,
		Cert:     l.cert,
	})
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (l LegacyAuth) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", KindLegacyAuth.String()).
		Str("auth", Redacted).
		Str("username", l.username).
		Str("password", Redacted)
	logCert(e, l.cert)
}

func (LegacyAuth) sealed() {}

// ClientCertOnly is mutual TLS with no token or password.
type ClientCertOnly struct {
	_    noCompare
	cert ClientCert
}

// NewClientCertOnly builds [ClientCertOnly] credentials.
func NewClientCertOnly(cert ClientCert) ClientCertOnly {
	return ClientCertOnly{cert: cert}
}

// Kind implements [Credentials].
func (c ClientCertOnly) Kind() CredentialsKind { return KindClientCertOnly }

// ClientCert implements [Credentials]. It always reports true.
func (c ClientCertOnly) ClientCert() (ClientCert, bool) { return c.cert, true }

// String implements [fmt.Stringer].
func (c ClientCertOnly) String() string {
	return fmt.Sprintf("ClientCertOnly(%s)", c.cert)
}

// GoString implements [fmt.GoStringer].
func (c ClientCertOnly) GoString() string { return c.String() }

// Format implements [fmt.Formatter].
func (c ClientCertOnly) Format(f fmt.State, verb rune) { writeRedacted(f, verb, c.String()) }

// MarshalJSON implements [json.Marshaler].
func (c ClientCertOnly) MarshalJSON() ([]byte, error) {
	cert := c.cert
	return json.Marshal(redactedView{Type: KindClientCertOnly.String(), Cert: &cert})
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (c ClientCertOnly) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", KindClientCertOnly.String()).Object("cert", c.cert)
}

func (ClientCertOnly) sealed() {}

// TokenOf returns the bearer token when c is [Token] credentials.
func TokenOf(c Credentials) (string, bool) {
	t, ok := c.(Token)
	if !ok {
		return "", false
	}
	return t.token, true
}

// UsernamePassword returns the user name and password for [BasicAuth] and
// [LegacyAuth] credentials.
func UsernamePassword(c Credentials) (string, string, bool) {
	switch v := c.(type) {
	case BasicAuth:
		return v.username, v.password, true
	case LegacyAuth:
		return v.username, v.password, true
	default:
		return "", "", false
	}
}

// BasicAuthHeader returns the base64 "username:password" value used in an
// HTTP Basic Authorization header. [LegacyAuth] already stores it and is
// returned verbatim.
func BasicAuthHeader(c Credentials) (string, bool) {
	switch v := c.(type) {
	case BasicAuth:
		return base64.StdEncoding.EncodeToString([]byte(v.username + ":" + v.password)), true
	case LegacyAuth:
		return v.auth, true
	default:
		return "", false
	}
}

// AuthorizationHeader returns the full Authorization header value for c:
// "Bearer <token>" or "Basic <base64>". Client-cert-only credentials have none.
func AuthorizationHeader(c Credentials) (string, bool) {
	if token, ok := TokenOf(c); ok {
		return "Bearer " + token, true
	}
	if basic, ok := BasicAuthHeader(c); ok {
		return "Basic " + basic, true
	}
	return "", false
}

// redactedView is the JSON shape of every variant.
type redactedView struct {
	Type     string      `json:"type"`
	Token    string      `json:"token,omitempty"`
	Auth     string      `json:"auth,omitempty"`
	Username string      `json:"username,omitempty"`
	Password string      `json:"password,omitempty"`
	Cert     *ClientCert `json:"cert,omitempty"`
}

func copyCert(cert *ClientCert) *ClientCert {
	if cert == nil {
		return nil
	}
	c := *cert
	return &c
}

func derefCert(cert *ClientCert) (ClientCert, bool) {
	if cert == nil {
		return ClientCert{}, false
	}
	return *cert, true
}

func certString(cert *ClientCert) string {
	if cert == nil {
		return "none"
	}
	return cert.String()
}

func logCert(e *zerolog.Event, cert *ClientCert) {
	if cert != nil {
		e.Object("cert", *cert)
	}
}

func writeRedacted(f fmt.State, verb rune, s string) {
	if verb == 'q' {
		s = fmt.Sprintf("%q", s)
	}
	_, _ = io.WriteString(f, s)
}

// compile-time checks
var (
	_ Credentials = Token{}
	_ Credentials = BasicAuth{}
	_ Credentials = LegacyAuth{}
	_ Credentials = ClientCertOnly{}
)
