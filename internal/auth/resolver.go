// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"net/url"

	"github.com/MKhiriev/go-npmrc/internal/logger"
	"github.com/MKhiriev/go-npmrc/internal/paths"
	"github.com/MKhiriev/go-npmrc/models"
)

// Per-registry credential keys, appended to the nerf-darted URL.
const (
	keyAuthToken = ":_authToken"
	keyUsername  = ":username"
	keyPassword  = ":_password"
	keyAuth      = ":_auth"
	keyCertfile  = ":certfile"
	keyKeyfile   = ":keyfile"
)

// Resolver computes [models.Credentials] for registry URLs.
type Resolver struct {
	cfg  Getter
	home string
	log  *logger.Logger
}

// NewResolver returns a Resolver reading from cfg. home is used to expand
// "~" in certificate paths and may be empty.
func NewResolver(cfg Getter, home string, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{cfg: cfg, home: home, log: log}
}

// CredentialsFor returns the credentials configured for registryURL. The
// boolean is false when no mechanism applies.
func (r *Resolver) CredentialsFor(registryURL *url.URL) (models.Credentials, bool) {
	nerfed := NerfDart(registryURL)
	log := r.log.With().Str("registry", nerfed).Logger()
	cert := r.clientCert(nerfed)

	if token, ok := r.cfg.Get(nerfed + keyAuthToken); ok {
		log.Debug().Msg("using _authToken")
		return models.NewToken(token, cert), true
	}

	username, hasUser := r.cfg.Get(nerfed + keyUsername)
	encoded, hasPassword := r.cfg.Get(nerfed + keyPassword)
	if hasUser && hasPassword {
		password, err := DecodePassword(encoded)
		if err == nil {
			log.Debug().Msg("using username/_password")
			return models.NewBasicAuth(username, password, cert), true
		}
		log.Debug().Err(err).Msg("skipping username/_password")
	}

	if auth, ok := r.cfg.Get(nerfed + keyAuth); ok {
		user, password, err := ParseLegacyAuth(auth)
		if err == nil {
			log.Debug().Msg("using _auth")
			return models.NewLegacyAuth(auth, user, password, cert), true
		}
		log.Debug().Err(err).Msg("skipping _auth")
	}

	if cert != nil {
		log.Debug().Msg("using client certificate only")
		return models.NewClientCertOnly(*cert), true
	}

	return nil, false
}

// clientCert returns the certificate pair for nerfed, or nil unless both
// certfile and keyfile are set.
func (r *Resolver) clientCert(nerfed string) *models.ClientCert {
	certfile, hasCert := r.cfg.Get(nerfed + keyCertfile)
	keyfile, hasKey := r.cfg.Get(nerfed + keyKeyfile)
	if !hasCert || !hasKey {
		return nil
	}

	cert := models.NewClientCert(paths.ExpandTilde(certfile, r.home), paths.ExpandTilde(keyfile, r.home))
	return &cert
}
