// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package paths computes where .npmrc files live.
//
// It covers the three standard locations:
//   - global:  {globalPrefix}/etc/npmrc
//   - user:    {home}/.npmrc
//   - project: {localPrefix}/.npmrc
//
// The local prefix is found by walking up from a start directory until a
// package.json file or a node_modules directory shows up. The global prefix
// and the home directory come from a [Locator], which lets tests replace
// process and executable discovery. Nothing here parses config content.
package paths
