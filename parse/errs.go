package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/pbxproj/token"
)

var (
	ErrParse                = errors.New("parse error")
	ErrMalformedHeader      = fmt.Errorf("%w: malformed header", ErrParse)
	ErrUnresolvableEncoding = fmt.Errorf("%w: unresolvable encoding", ErrParse)
	ErrUndecodableBytes     = fmt.Errorf("%w: undecodable bytes", ErrParse)
	ErrUnterminatedComment  = fmt.Errorf("%w: unterminated comment", ErrParse)
	ErrMissingTerminator    = fmt.Errorf("%w: missing terminator", ErrParse)
	ErrUnparsableKey        = fmt.Errorf("%w: unparsable key", ErrParse)
	ErrUnparsableValue      = fmt.Errorf("%w: unparsable value", ErrParse)
)

// Error is a parse failure at a position in the decoded text.
type Error struct {
	Err      error
	Pos      *token.Pos
	Expected string
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: expected %q at %s", e.Err, e.Expected, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}

func (e *Error) LineCol() (int, int) {
	return e.Pos.LineCol()
}
