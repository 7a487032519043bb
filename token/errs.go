package token

import (
	"errors"
)

var (
	ErrUnknownCharset  = errors.New("unknown charset")
	ErrBadUTF8         = errors.New("bad utf8")
	ErrUnrepresentable = errors.New("unrepresentable text")
)
