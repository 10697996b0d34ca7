// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ClientCert is a certificate/key file pair used for mutual TLS against a
// registry. Both paths are always set: a config that names only one of them
// yields no ClientCert at all.
//
// ClientCert holds no secret material (only file paths), so it is safe to
// compare and to log.
type ClientCert struct {
	// Certfile is the path to the PEM client certificate.
	Certfile string `json:"certfile"`
	// Keyfile is the path to the PEM private key.
	Keyfile string `json:"keyfile"`
}

// NewClientCert builds a [ClientCert] from both paths.
func NewClientCert(certfile, keyfile string) ClientCert {
	return ClientCert{Certfile: certfile, Keyfile: keyfile}
}

// String implements [fmt.Stringer].
func (c ClientCert) String() string {
	return fmt.Sprintf("ClientCert{certfile: %q, keyfile: %q}", c.Certfile, c.Keyfile)
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (c ClientCert) MarshalZerologObject(e *zerolog.Event) {
	e.Str("certfile", c.Certfile).Str("keyfile", c.Keyfile)
}
