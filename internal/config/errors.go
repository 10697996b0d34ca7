package config

import "errors"

// Load errors. Both are wrapped together with the offending path and, for
// [ErrReadFile], the underlying I/O error.
var (
	// ErrFileNotFound indicates that the file given to [Loader.LoadFromFile]
	// does not exist. The three-tier [Loader.Load] never returns it.
	ErrFileNotFound = errors.New("config file not found")
	// ErrReadFile indicates an I/O failure other than "not found" while
	// reading a config file.
	ErrReadFile = errors.New("failed to read config file")
)
