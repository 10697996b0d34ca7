package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type optionsBuilder struct {
	sources []*LoadOptions
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		sources: make([]*LoadOptions, 0, 2),
	}
}

// build merges the collected sources in order; non-zero fields of later
// sources override earlier ones.
func (b *optionsBuilder) build() (LoadOptions, error) {
	if b.err != nil {
		return LoadOptions{}, fmt.Errorf("error occurred during building load options: %w", b.err)
	}

	var opts LoadOptions
	for _, src := range b.sources {
		if err := mergo.Merge(&opts, src, mergo.WithOverride); err != nil {
			return LoadOptions{}, fmt.Errorf("error merging load options: %w", err)
		}
	}

	return opts, nil
}

func (b *optionsBuilder) withEnv(environ map[string]string) *optionsBuilder {
	envOpts := &LoadOptions{}
	if err := parseEnv(envOpts, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envOpts)
	return b
}

func (b *optionsBuilder) withExplicit(opts LoadOptions) *optionsBuilder {
	b.sources = append(b.sources, &opts)
	return b
}
