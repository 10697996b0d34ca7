// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser turns the text of a single .npmrc file into a flat map of
// keys to values.
//
// The format is a restricted INI dialect: one "key = value" pair per line,
// full-line comments starting with '#' or ';', no sections and no inline
// comments. Keys are kept verbatim, so registry scoped keys such as
// "@myorg:registry" and nerf-darted auth keys such as
// "//registry.npmjs.org/:_authToken" survive untouched. Values go through
// ${VAR} / ${VAR?} environment expansion, see [ExpandEnvVars].
//
// The package knows nothing about registries or credentials.
package parser
