// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth resolves registry credentials from merged .npmrc values.
//
// Credentials are keyed by the "nerf-darted" form of a registry URL
// (//host[:port]/path/), which keeps a token configured for one registry
// from being sent to another one:
//
//	//registry.npmjs.org/:_authToken = your-token
//	//private.registry.com/:username  = user
//	//private.registry.com/:_password = base64-encoded-password
//	//private.registry.com/:_auth     = base64("user:password")
//	//private.registry.com/:certfile  = ~/certs/client.pem
//	//private.registry.com/:keyfile   = ~/certs/client.key
//
// Mechanisms are tried in order: _authToken, username/_password, _auth,
// then a client certificate alone. A certificate is attached to whichever
// mechanism wins. Values that fail to decode disable their mechanism and
// resolution moves on; they are never reported as errors.
package auth
