package registry

import "errors"

// ErrInvalidURL is returned by [ParseURL] when a value is not an absolute
// URL with a host. Resolution treats such values as absent.
var ErrInvalidURL = errors.New("invalid registry URL")
