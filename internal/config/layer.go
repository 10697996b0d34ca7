// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-npmrc/internal/parser"
)

// LayerKind identifies which tier a [Layer] was loaded into.
type LayerKind int

// Layer kinds in increasing priority.
const (
	LayerGlobal LayerKind = iota
	LayerUser
	LayerProject
)

// String returns "global", "user" or "project".
func (k LayerKind) String() string {
	switch k {
	case LayerGlobal:
		return "global"
	case LayerUser:
		return "user"
	case LayerProject:
		return "project"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// Layer is one parsed config file. It is never modified after loading.
type Layer struct {
	kind   LayerKind
	source string
	data   map[string]string
}

// Kind returns the tier the layer was loaded into.
func (l *Layer) Kind() LayerKind { return l.kind }

// Source returns the path the layer was read from.
func (l *Layer) Source() string { return l.source }

// Get returns the value of key in this layer only.
func (l *Layer) Get(key string) (string, bool) {
	v, ok := l.data[key]
	return v, ok
}

// Keys returns the layer's keys in sorted order.
func (l *Layer) Keys() []string {
	return slices.Sorted(maps.Keys(l.data))
}

// Len returns the number of keys in the layer.
func (l *Layer) Len() int { return len(l.data) }

// readLayer reads and parses path. A missing file yields a nil layer and no
// error; any other read failure is wrapped in [ErrReadFile].
func readLayer(fsys afero.Fs, kind LayerKind, path string, lookup parser.LookupFunc) (*Layer, error) {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}

	data, err := parser.Parse(content, lookup)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return &Layer{kind: kind, source: path, data: data}, nil
}
