package registry

import "net/url"

// Resolver answers registry questions against merged configuration.
type Resolver struct {
	cfg Getter
}

// NewResolver returns a Resolver reading from cfg.
func NewResolver(cfg Getter) *Resolver {
	return &Resolver{cfg: cfg}
}

// Default returns the configured "registry" when it parses, else [DefaultRegistry].
func (r *Resolver) Default() *url.URL {
	if raw, ok := r.cfg.Get("registry"); ok {
		if u, err := ParseURL(raw); err == nil {
			return u
		}
	}
	return Default()
}

// For returns the registry serving pkg. Scoped packages use their
// "@scope:registry" entry when it parses; everything else gets [Resolver.Default].
func (r *Resolver) For(pkg string) *url.URL {
	if scope, ok := ExtractScope(pkg); ok {
		if raw, ok := r.cfg.Get(ScopeKey(scope)); ok {
			if u, err := ParseURL(raw); err == nil {
				return u
			}
		}
	}
	return r.Default()
}
