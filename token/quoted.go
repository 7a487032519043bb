package token

import (
	"strings"
)

// quoteRunes are the characters that force a scalar to be quoted.  Beyond
// the IDE's own set this includes everything the grammar treats as
// structure, so an unquoted rendering always parses back to one token.
const quoteRunes = "@$() <>=-+;,\"{}\\*'[]&|!?^%#~`"

var quoteSeqs = []string{"::", "//", "/*"}

// NeedsQuote reports whether v must be written quoted.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for _, seq := range quoteSeqs {
		if strings.Contains(v, seq) {
			return true
		}
	}
	for _, r := range v {
		if r < ' ' || r > '~' {
			return true
		}
		if strings.ContainsRune(quoteRunes, r) {
			return true
		}
	}
	return false
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
	`"`, `\"`,
)

// Quote escapes v and wraps it in double quotes.
func Quote(v string) string {
	return `"` + escaper.Replace(v) + `"`
}

// Unescape decodes the body of a quoted scalar.  Escapes other than
// \\ \t \n \r \" are kept verbatim.
func Unescape(v string) string {
	if strings.IndexByte(v, '\\') == -1 {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' || i+1 == len(v) {
			b.WriteByte(c)
			continue
		}
		i++
		switch v[i] {
		case '\\':
			b.WriteByte('\\')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte('\\')
			b.WriteByte(v[i])
		}
	}
	return b.String()
}
