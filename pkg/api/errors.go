package api

import (
	"errors"
)

// ErrInvalidRange is returned when a range with Start > Stop or a negative
// endpoint reaches an operation that requires well-formed input. The parser
// never produces such ranges; this guards direct construction.
var ErrInvalidRange = errors.New("invalid identifier range")
