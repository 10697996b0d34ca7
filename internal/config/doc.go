// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and merges .npmrc files.
//
// Up to three layers contribute to a [Config], in increasing priority:
//  1. Global  - {global prefix}/etc/npmrc, or the npm_config_globalconfig path
//  2. User    - ~/.npmrc, or the npm_config_userconfig path
//  3. Project - {local prefix}/.npmrc, where the local prefix is the nearest
//     directory holding package.json or node_modules
//
// [Config.Get] returns the value from the highest-priority layer defining a
// key. A layer whose file does not exist is absent rather than empty, which
// [Config.HasProjectConfig] and friends expose.
//
// The loader's own options ([LoadOptions]) are assembled from npm's
// environment variables and explicit values, explicit values winning.
// The main entry points are [Load] and [LoadFromFile]; use [NewLoader] to
// inject a filesystem, locator, environment or logger.
package config
