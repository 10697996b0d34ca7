package auth

//go:generate mockgen -source=interfaces.go -destination=../mock/getter_mock.go -package=mock

// Getter looks up a merged config value by key.
type Getter interface {
	Get(key string) (string, bool)
}
