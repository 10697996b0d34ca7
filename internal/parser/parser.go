// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// LookupFunc resolves an environment variable by name. It has the same
// contract as [os.LookupEnv]: the boolean reports whether the variable is set.
type LookupFunc func(name string) (string, bool)

// OSLookup reads variables from the process environment.
var OSLookup LookupFunc = os.LookupEnv

// MapLookup returns a LookupFunc backed by a fixed snapshot of variables.
// A nil map behaves like an empty environment.
func MapLookup(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// envExpr matches an optional run of backslashes followed by ${NAME} or ${NAME?}.
var envExpr = regexp.MustCompile(`(\\*)\$\{([^${}?]+)(\?)?\}`)

// Parse reads .npmrc content into a key/value map.
//
// Lines are processed independently. Blank lines, comment lines and lines
// without '=' are dropped, as are lines whose key is empty. The value is
// everything after the first '=', trimmed and expanded through lookup.
// A repeated key overwrites the earlier value.
//
// Parse fails only with [ErrParse] when content is not valid UTF-8.
func Parse(content []byte, lookup LookupFunc) (map[string]string, error) {
	if !utf8.Valid(content) {
		return nil, ErrParse
	}
	if lookup == nil {
		lookup = OSLookup
	}

	result := make(map[string]string)
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		result[key] = ExpandEnvVars(strings.TrimSpace(value), lookup)
	}

	return result, nil
}

// ExpandEnvVars substitutes ${NAME} and ${NAME?} references in value.
//
// The run of backslashes in front of '$' decides what happens. An odd count
// escapes the reference: half of the backslashes (rounded down) are kept and
// the reference is emitted literally, modifier included. An even count keeps
// half of the backslashes and substitutes the variable. An unset variable
// stays as the literal ${NAME}, or becomes empty with the '?' modifier.
// Substituted values are not scanned again.
func ExpandEnvVars(value string, lookup LookupFunc) string {
	if lookup == nil {
		lookup = OSLookup
	}

	return envExpr.ReplaceAllStringFunc(value, func(match string) string {
		groups := envExpr.FindStringSubmatch(match)
		escapes, name, modifier := groups[1], groups[2], groups[3]
		kept := escapes[:len(escapes)/2]

		if len(escapes)%2 == 1 {
			return fmt.Sprintf("%s${%s%s}", kept, name, modifier)
		}

		if v, ok := lookup(name); ok {
			return kept + v
		}
		if modifier == "?" {
			return kept
		}

		return fmt.Sprintf("%s${%s}", kept, name)
	})
}

// ParseBool interprets "true" and "false" case-insensitively. The second
// result is false for any other value.
func ParseBool(value string) (bool, bool) {
	switch strings.ToLower(value) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
