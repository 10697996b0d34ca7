package parser

import "errors"

// ErrParse is returned by [Parse] when the content cannot be decoded as
// UTF-8 text. Malformed individual lines are never an error.
var ErrParse = errors.New("config content is not valid UTF-8 text")
