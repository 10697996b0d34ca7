package auth

import "errors"

// Decode errors returned by [DecodePassword] and [ParseLegacyAuth].
var (
	// ErrInvalidBase64 indicates a _password or _auth value that is not
	// valid standard base64.
	ErrInvalidBase64 = errors.New("invalid base64 encoding")
	// ErrInvalidUTF8 indicates a value that decodes to bytes which are not
	// UTF-8 text.
	ErrInvalidUTF8 = errors.New("decoded value is not valid UTF-8")
)
