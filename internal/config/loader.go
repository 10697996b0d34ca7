// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"os"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-npmrc/internal/logger"
	"github.com/MKhiriev/go-npmrc/internal/parser"
	"github.com/MKhiriev/go-npmrc/internal/paths"
)

// Loader discovers and reads the .npmrc layers.
type Loader struct {
	fs      afero.Fs
	locator paths.Locator
	environ map[string]string
	getwd   func() (string, error)
	log     *logger.Logger
}

// Option configures a [Loader].
type Option func(*Loader)

// WithFs makes the loader read files from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) { l.fs = fs }
}

// WithLocator replaces the home directory and global prefix lookups.
func WithLocator(locator paths.Locator) Option {
	return func(l *Loader) { l.locator = locator }
}

// WithEnvironment replaces the process environment, both for npm_config_*
// option overrides and for ${VAR} expansion in file values.
func WithEnvironment(environ map[string]string) Option {
	return func(l *Loader) { l.environ = maps.Clone(environ) }
}

// WithWorkingDir sets the directory used when [LoadOptions.Cwd] is empty.
func WithWorkingDir(dir string) Option {
	return func(l *Loader) {
		l.getwd = func() (string, error) { return dir, nil }
	}
}

// WithLogger makes the loader and the resolvers of loaded configs log to log.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// NewLoader returns a Loader backed by the OS filesystem, the system
// locator and the process environment unless overridden by opts.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fs:      afero.NewOsFs(),
		locator: paths.NewSystemLocator(),
		getwd:   os.Getwd,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Nop()
	}
	return l
}

// Load reads the global, user and project layers using the default loader.
func Load(opts LoadOptions) (*Config, error) {
	return NewLoader().Load(opts)
}

// LoadFromFile reads a single file into the project slot using the default
// loader.
func LoadFromFile(path string) (*Config, error) {
	return NewLoader().LoadFromFile(path)
}

// Load discovers and reads the global, user and project layers.
//
// A layer whose file does not exist, or whose location cannot be
// determined, is absent. Any other I/O failure aborts the load with
// [ErrReadFile].
func (l *Loader) Load(opts LoadOptions) (*Config, error) {
	environ := l.environment()

	resolved, err := newOptionsBuilder().
		withEnv(environ).
		withExplicit(opts).
		build()
	if err != nil {
		return nil, err
	}

	lookup := parser.MapLookup(environ)
	home, _ := l.locator.HomeDir()

	globalPrefix := resolved.GlobalPrefix
	if globalPrefix == "" {
		globalPrefix, _ = l.locator.GlobalPrefix()
	}

	cwd := resolved.Cwd
	if cwd == "" {
		cwd = l.workingDir()
	}
	localPrefix := paths.FindLocalPrefix(l.fs, cwd)

	globalPath := paths.ExpandTilde(resolved.GlobalConfig, home)
	if globalPath == "" && globalPrefix != "" {
		globalPath = paths.GlobalConfigPath(globalPrefix)
	}

	userPath := paths.ExpandTilde(resolved.UserConfig, home)
	if userPath == "" && home != "" {
		userPath = paths.UserConfigPath(home)
	}

	global, err := l.loadLayer(LayerGlobal, globalPath, resolved.SkipGlobal, lookup)
	if err != nil {
		return nil, err
	}
	user, err := l.loadLayer(LayerUser, userPath, resolved.SkipUser, lookup)
	if err != nil {
		return nil, err
	}
	project, err := l.loadLayer(LayerProject, paths.ProjectConfigPath(localPrefix), resolved.SkipProject, lookup)
	if err != nil {
		return nil, err
	}

	return newConfig(locations{
		globalPrefix: globalPrefix,
		localPrefix:  localPrefix,
		home:         home,
	}, global, user, project, l.log), nil
}

// LoadFromFile reads exactly one file into the project slot, bypassing
// layer discovery. Unlike [Loader.Load], a missing file is an error
// wrapping [ErrFileNotFound].
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	layer, err := readLayer(l.fs, LayerProject, path, parser.MapLookup(l.environment()))
	if err != nil {
		return nil, err
	}
	if layer == nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	l.log.Debug().Str("path", path).Int("keys", layer.Len()).Msg("single file loaded")

	home, _ := l.locator.HomeDir()
	globalPrefix, _ := l.locator.GlobalPrefix()

	return newConfig(locations{
		globalPrefix: globalPrefix,
		localPrefix:  paths.FindLocalPrefix(l.fs, l.workingDir()),
		home:         home,
	}, nil, nil, layer, l.log), nil
}

func (l *Loader) loadLayer(kind LayerKind, path string, skip bool, lookup parser.LookupFunc) (*Layer, error) {
	log := l.log.With().Stringer("layer", kind).Str("path", path).Logger()

	switch {
	case skip:
		log.Debug().Msg("layer skipped")
		return nil, nil
	case path == "":
		log.Debug().Msg("layer location unknown")
		return nil, nil
	}

	layer, err := readLayer(l.fs, kind, path, lookup)
	if err != nil {
		return nil, err
	}
	if layer == nil {
		log.Debug().Msg("layer absent")
		return nil, nil
	}

	log.Debug().Int("keys", layer.Len()).Msg("layer loaded")
	return layer, nil
}

// environment returns the injected environment or a fresh snapshot of the
// process one.
func (l *Loader) environment() map[string]string {
	if l.environ != nil {
		return l.environ
	}
	return environFromOS()
}

func (l *Loader) workingDir() string {
	dir, err := l.getwd()
	if err != nil {
		l.log.Warn().Err(err).Msg("cannot determine working directory, using \".\"")
		return "."
	}
	return dir
}
