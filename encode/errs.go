package encode

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding            = errors.New("encoding error")
	ErrNonFiniteNumber     = fmt.Errorf("%w: non finite number", ErrEncoding)
	ErrUnencodableType     = fmt.Errorf("%w: unencodable type", ErrEncoding)
	ErrEncodingUnavailable = fmt.Errorf("%w: character set unavailable", ErrEncoding)
)
