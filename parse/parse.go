package parse

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/signadot/pbxproj/debug"
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/token"
)

var (
	indentRE      = regexp.MustCompile(`(?m)^([ \t]+)\w`)
	projectNameRE = regexp.MustCompile(`Build configuration list for PBXProject "([^"]*)"`)
)

// Parse decodes a project file.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	line, rest, _ := bytes.Cut(d, []byte{'\n'})
	name, ok := token.ParseHeader(string(line))
	if !ok {
		return nil, &Error{Err: ErrMalformedHeader, Pos: token.NewPosDoc(string(line)).Pos(0)}
	}
	cs, err := token.LookupCharset(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnresolvableEncoding, err)
	}
	body, err := cs.Decode(rest)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %w", ErrUndecodableBytes, name, err)
	}
	text := string(line) + "\n" + body
	p := &parser{
		src:  text,
		i:    len(line) + 1,
		pos:  token.NewPosDoc(text),
		opts: o,
	}
	root, err := p.parseRoot()
	if err != nil {
		return nil, err
	}
	doc := &ir.Document{
		Encoding:       name,
		Indent:         sniffIndent(body),
		TrailingCommas: p.trailingCommas,
		ProjectName:    sniffProjectName(body),
		Root:           root,
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes: encoding %s indent %q trailing commas %t project %q\n",
			len(d), doc.Encoding, doc.Indent, doc.TrailingCommas, doc.ProjectName)
	}
	return doc, nil
}

func sniffIndent(body string) string {
	m := indentRE.FindStringSubmatch(body)
	if m == nil {
		return ir.DefaultIndent
	}
	return m[1]
}

func sniffProjectName(body string) string {
	m := projectNameRE.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}

type parser struct {
	src  string
	i    int
	pos  *token.PosDoc
	opts *parseOpts
	root *ir.Node

	styleSeen      bool
	trailingCommas bool
}

func (p *parser) errAt(i int, err error) error {
	return &Error{Err: err, Pos: p.pos.Pos(i)}
}

func (p *parser) expected(i int, what string) error {
	return &Error{Err: ErrMissingTerminator, Pos: p.pos.Pos(i), Expected: what}
}

func (p *parser) eof() bool {
	return p.i >= len(p.src)
}

func (p *parser) parseRoot() (*ir.Node, error) {
	p.root = &ir.Node{Type: ir.ObjectType}
	if err := p.skip(); err != nil {
		return nil, err
	}
	if p.eof() || p.src[p.i] != '{' {
		return nil, p.errAt(p.i, ErrUnparsableValue)
	}
	p.mark(p.root, p.i)
	if err := p.parseMap(ir.Path{}, p.root); err != nil {
		return nil, err
	}
	return p.root, nil
}

// skip consumes whitespace and comments.
func (p *parser) skip() error {
	for !p.eof() {
		switch p.src[p.i] {
		case ' ', '\t', '\r', '\n':
			p.i++
		case '/':
			if !strings.HasPrefix(p.src[p.i:], "/*") {
				return nil
			}
			if err := p.comment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// comment consumes a possibly nested comment.
func (p *parser) comment() error {
	start := p.i
	p.i += 2
	depth := 1
	for !p.eof() {
		switch {
		case strings.HasPrefix(p.src[p.i:], "/*"):
			depth++
			p.i += 2
		case strings.HasPrefix(p.src[p.i:], "*/"):
			depth--
			p.i += 2
			if depth == 0 {
				return nil
			}
		default:
			p.i++
		}
	}
	return p.errAt(start, ErrUnterminatedComment)
}

func (p *parser) parseMap(path ir.Path, node *ir.Node) error {
	open := p.i
	p.i++
	for {
		if err := p.skip(); err != nil {
			return err
		}
		if p.eof() {
			return p.expected(open, "}")
		}
		if p.src[p.i] == '}' {
			p.i++
			return nil
		}
		keyAt := p.i
		key, ok, err := p.scalar()
		if err != nil {
			return err
		}
		if !ok {
			return p.errAt(keyAt, ErrUnparsableKey)
		}
		if err := p.skip(); err != nil {
			return err
		}
		if p.eof() || p.src[p.i] != '=' {
			return p.expected(p.i, "=")
		}
		p.i++
		if err := p.skip(); err != nil {
			return err
		}
		attach := func(v *ir.Node) { node.Set(key, v) }
		if err := p.value(path.Key(key), attach); err != nil {
			return err
		}
		if err := p.skip(); err != nil {
			return err
		}
		if p.eof() || p.src[p.i] != ';' {
			return p.expected(p.i, ";")
		}
		p.i++
	}
}

func (p *parser) parseList(path ir.Path, node *ir.Node) error {
	open := p.i
	p.i++
	comma := false
	for {
		if err := p.skip(); err != nil {
			return err
		}
		if p.eof() {
			return p.expected(open, ")")
		}
		if p.src[p.i] == ')' {
			p.i++
			if !p.styleSeen && len(node.Values) > 0 {
				p.styleSeen = true
				p.trailingCommas = comma
			}
			return nil
		}
		if err := p.value(path.Idx(len(node.Values)), node.Append); err != nil {
			return err
		}
		comma = false
		if err := p.skip(); err != nil {
			return err
		}
		if !p.eof() && p.src[p.i] == ',' {
			p.i++
			comma = true
		}
	}
}

// value parses the value at path and hands it to attach.  Containers
// are attached before their contents are parsed so the document built so
// far is always reachable from the root.
func (p *parser) value(path ir.Path, attach func(*ir.Node)) error {
	at := p.i
	if p.eof() {
		return p.errAt(at, ErrUnparsableValue)
	}
	switch p.src[p.i] {
	case '{':
		n := &ir.Node{Type: ir.ObjectType}
		attach(n)
		p.mark(n, at)
		return p.parseMap(path, n)
	case '(':
		n := &ir.Node{Type: ir.ArrayType}
		attach(n)
		p.mark(n, at)
		return p.parseList(path, n)
	case '"':
		s, _, err := p.scalar()
		if err != nil {
			return err
		}
		n := ir.FromString(s)
		attach(n)
		p.mark(n, at)
		return nil
	}
	tok := p.bare()
	if tok == "" {
		return p.errAt(at, ErrUnparsableValue)
	}
	var n *ir.Node
	if p.opts.forceString != nil && p.opts.forceString(path, p.root) {
		n = ir.FromString(tok)
	} else {
		n = token.Classify(tok)
	}
	attach(n)
	p.mark(n, at)
	return nil
}

// scalar reads a quoted or bare string.
func (p *parser) scalar() (string, bool, error) {
	if p.eof() {
		return "", false, nil
	}
	if p.src[p.i] != '"' {
		tok := p.bare()
		return tok, tok != "", nil
	}
	start := p.i
	p.i++
	b := p.i
	for !p.eof() {
		switch p.src[p.i] {
		case '\\':
			p.i += 2
		case '"':
			s := p.src[b:p.i]
			p.i++
			return token.Unescape(s), true, nil
		default:
			p.i++
		}
	}
	p.i = len(p.src)
	return "", false, p.expected(start, `"`)
}

// bare reads an unquoted token.
func (p *parser) bare() string {
	b := p.i
	for !p.eof() {
		c := p.src[p.i]
		if bareStop(c) || strings.HasPrefix(p.src[p.i:], "/*") {
			break
		}
		p.i++
	}
	return p.src[b:p.i]
}

func bareStop(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ';', ',', '=', '(', ')', '{', '}', '"':
		return true
	}
	return false
}

func (p *parser) mark(n *ir.Node, at int) {
	if p.opts.positions != nil {
		p.opts.positions[n] = p.pos.Pos(at)
	}
}
