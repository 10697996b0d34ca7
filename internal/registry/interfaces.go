package registry

// Getter looks up a merged config value by key.
type Getter interface {
	Get(key string) (string, bool)
}
