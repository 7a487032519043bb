package objects

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrDuplicateReference = errors.New("duplicate reference")
	ErrImmutableTag       = errors.New("isa cannot change")
	ErrMalformed          = errors.New("malformed project")
)
