package paths

//go:generate mockgen -source=interfaces.go -destination=../mock/locator_mock.go -package=mock

// Locator answers the process-level questions the loader cannot derive from
// the filesystem alone.
type Locator interface {
	// HomeDir returns the current user's home directory. The boolean is
	// false when it cannot be determined.
	HomeDir() (string, bool)

	// GlobalPrefix returns the npm global install prefix derived from the
	// location of the node executable. The boolean is false when node
	// cannot be found.
	GlobalPrefix() (string, bool)
}
