package token

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

const (
	headerPrefix = "// !$*"
	headerSuffix = "*$!"
)

// Header renders the first line of a project file, without newline.
func Header(charset string) string {
	return headerPrefix + charset + headerSuffix
}

// ParseHeader extracts the charset name from a header line.
func ParseHeader(line string) (string, bool) {
	line = strings.TrimRight(line, " \t\r")
	if !strings.HasPrefix(line, headerPrefix) || !strings.HasSuffix(line, headerSuffix) {
		return "", false
	}
	name := line[len(headerPrefix) : len(line)-len(headerSuffix)]
	if name == "" {
		return "", false
	}
	return name, true
}

// Charset is a header charset resolved to a text encoding.
type Charset struct {
	Name string

	enc  encoding.Encoding
	utf8 bool
}

// LookupCharset resolves an IANA charset name.  Names the IANA registry
// does not know, such as "UTF8", are retried as WHATWG labels.
func LookupCharset(name string) (*Charset, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(name)
	}
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return &Charset{Name: name, enc: enc, utf8: isUTF8(enc)}, nil
}

func isUTF8(enc encoding.Encoding) bool {
	if enc == unicode.UTF8 {
		return true
	}
	if n, err := htmlindex.Name(enc); err == nil && n == "utf-8" {
		return true
	}
	n, err := ianaindex.IANA.Name(enc)
	return err == nil && n == "UTF-8"
}

func (c *Charset) IsUTF8() bool { return c.utf8 }

func (c *Charset) Decode(d []byte) (string, error) {
	if c.utf8 {
		if !utf8.Valid(d) {
			return "", fmt.Errorf("%w in %s text", ErrBadUTF8, c.Name)
		}
		return string(d), nil
	}
	res, err := c.enc.NewDecoder().Bytes(d)
	if err != nil {
		return "", err
	}
	return string(res), nil
}

func (c *Charset) Encode(s string) ([]byte, error) {
	if c.utf8 {
		return []byte(s), nil
	}
	res, err := c.enc.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrUnrepresentable, c.Name, err)
	}
	return []byte(res), nil
}
