package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/pbxproj/debug"
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/token"
)

type EncState struct {
	policy   Policy
	indent   string
	trailing bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes doc to w in the character set named by doc.Encoding.
// Nothing is written when encoding fails.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   doc.Indent,
		trailing: doc.TrailingCommas,
	}
	if es.indent == "" {
		es.indent = ir.DefaultIndent
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.policy == nil {
		es.policy = nopPolicy{}
	}
	name := doc.Encoding
	if name == "" {
		name = ir.DefaultEncoding
	}
	cs, err := token.LookupCharset(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingUnavailable, err)
	}
	e := &encoder{es: es}
	if err := e.document(doc.Root, name); err != nil {
		return err
	}
	d, err := cs.Encode(e.b.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingUnavailable, err)
	}
	if debug.Encode() {
		debug.Logf("encoded %d bytes in %s, indent %q trailing commas %t\n", len(d), name, es.indent, es.trailing)
	}
	_, err = w.Write(d)
	return err
}

// EncodeNode writes n as it would appear at path p inside a document,
// without a header, as UTF-8.
func EncodeNode(n *ir.Node, p ir.Path, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: ir.DefaultIndent}
	for _, opt := range opts {
		opt(es)
	}
	if es.policy == nil {
		es.policy = nopPolicy{}
	}
	e := &encoder{es: es}
	if err := e.value(p, n, 0, false); err != nil {
		return err
	}
	e.write("\n")
	_, err := io.WriteString(w, e.b.String())
	return err
}

type encoder struct {
	es *EncState
	b  strings.Builder
}

func (e *encoder) write(s string) {
	e.b.WriteString(s)
}

func (e *encoder) colored(t ir.Type, a ColorAttr, s string) {
	if e.es.Color != nil {
		s = e.es.Color(t, a, s)
	}
	e.b.WriteString(s)
}

func (e *encoder) ind(level int) {
	for range level {
		e.b.WriteString(e.es.indent)
	}
}

func (e *encoder) document(root *ir.Node, charset string) error {
	e.colored(ir.StringType, CommentColor, token.Header(charset))
	e.write("\n")
	if root == nil || root.Type != ir.ObjectType {
		return fmt.Errorf("%w: root must be a map, not %s", ErrUnencodableType, typeName(root))
	}
	e.colored(ir.ObjectType, SepColor, "{")
	e.write("\n")
	if err := e.entries(ir.Path{}, root, 1); err != nil {
		return err
	}
	e.colored(ir.ObjectType, SepColor, "}")
	e.write("\n")
	return nil
}

func (e *encoder) entries(p ir.Path, n *ir.Node, level int) error {
	for _, i := range e.es.policy.KeyOrder(p, n) {
		if err := e.entry(p, n, i, level); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) entry(p ir.Path, n *ir.Node, i, level int) error {
	k := n.Fields[i].String
	cp := p.Key(k)
	e.ind(level)
	e.key(cp, k)
	e.write(" = ")
	if err := e.value(cp, n.Values[i], level, false); err != nil {
		return err
	}
	e.write(";\n")
	return nil
}

func (e *encoder) key(p ir.Path, k string) {
	e.colored(ir.ObjectType, FieldColor, quoteScalar(k, e.es.policy.EscapeKey(p)))
	e.comment(e.es.policy.Comment(p, k))
}

func (e *encoder) comment(c string) {
	if c == "" {
		return
	}
	e.write(" ")
	e.colored(ir.StringType, CommentColor, "/* "+sanitizeComment(c)+" */")
}

func (e *encoder) value(p ir.Path, n *ir.Node, level int, inline bool) error {
	if n == nil {
		return fmt.Errorf("%w: missing value at %s", ErrUnencodableType, p)
	}
	switch n.Type {
	case ir.ObjectType:
		switch {
		case inline || e.es.policy.SingleLine(p, n):
			return e.inlineMap(p, n)
		case e.es.policy.Sections(p):
			return e.sections(p, n, level)
		default:
			return e.multiMap(p, n, level)
		}
	case ir.ArrayType:
		if inline {
			return e.inlineList(p, n)
		}
		return e.multiList(p, n, level)
	}
	return e.leaf(p, n)
}

func (e *encoder) multiMap(p ir.Path, n *ir.Node, level int) error {
	e.colored(ir.ObjectType, SepColor, "{")
	e.write("\n")
	if err := e.entries(p, n, level+1); err != nil {
		return err
	}
	e.ind(level)
	e.colored(ir.ObjectType, SepColor, "}")
	return nil
}

// sections writes the entries of n grouped by isa, in order of first
// appearance, each group between Begin and End banners.
func (e *encoder) sections(p ir.Path, n *ir.Node, level int) error {
	var tags []string
	groups := map[string][]int{}
	for _, i := range e.es.policy.KeyOrder(p, n) {
		tag := sectionTag(n.Values[i])
		if _, ok := groups[tag]; !ok {
			tags = append(tags, tag)
		}
		groups[tag] = append(groups[tag], i)
	}
	e.colored(ir.ObjectType, SepColor, "{")
	e.write("\n")
	for _, tag := range tags {
		e.write("\n")
		if tag != "" {
			e.colored(ir.StringType, TagColor, "/* Begin "+tag+" section */")
			e.write("\n")
		}
		for _, i := range groups[tag] {
			if err := e.entry(p, n, i, level+1); err != nil {
				return err
			}
		}
		if tag != "" {
			e.colored(ir.StringType, TagColor, "/* End "+tag+" section */")
			e.write("\n")
		}
	}
	e.ind(level)
	e.colored(ir.ObjectType, SepColor, "}")
	return nil
}

func sectionTag(v *ir.Node) string {
	if v == nil || v.Type != ir.ObjectType {
		return ""
	}
	isa := v.Get("isa")
	if isa == nil || isa.Type != ir.StringType {
		return ""
	}
	return isa.String
}

func (e *encoder) multiList(p ir.Path, n *ir.Node, level int) error {
	e.colored(ir.ArrayType, SepColor, "(")
	e.write("\n")
	for j, v := range n.Values {
		e.ind(level + 1)
		if err := e.value(p.Idx(j), v, level+1, false); err != nil {
			return err
		}
		if e.es.trailing || j < len(n.Values)-1 {
			e.write(",")
		}
		e.write("\n")
	}
	e.ind(level)
	e.colored(ir.ArrayType, SepColor, ")")
	return nil
}

func (e *encoder) inlineMap(p ir.Path, n *ir.Node) error {
	e.colored(ir.ObjectType, SepColor, "{")
	for _, i := range e.es.policy.KeyOrder(p, n) {
		k := n.Fields[i].String
		cp := p.Key(k)
		e.key(cp, k)
		e.write(" = ")
		if err := e.value(cp, n.Values[i], 0, true); err != nil {
			return err
		}
		e.write("; ")
	}
	e.colored(ir.ObjectType, SepColor, "}")
	return nil
}

func (e *encoder) inlineList(p ir.Path, n *ir.Node) error {
	e.colored(ir.ArrayType, SepColor, "(")
	for j, v := range n.Values {
		if err := e.value(p.Idx(j), v, 0, true); err != nil {
			return err
		}
		if e.es.trailing || j < len(n.Values)-1 {
			e.write(", ")
		}
	}
	e.colored(ir.ArrayType, SepColor, ")")
	return nil
}

func (e *encoder) leaf(p ir.Path, n *ir.Node) error {
	if lit, ok := literal(n); ok {
		e.colored(n.Type, ValueColor, lit)
		return nil
	}
	var s string
	switch n.Type {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(n.Bool)
	case ir.StringType:
		e.colored(ir.StringType, ValueColor, quoteScalar(n.String, e.es.policy.Escape(p)))
		e.comment(e.es.policy.Comment(p, n.String))
		return nil
	case ir.IntType:
		s = strconv.FormatInt(n.Int64, 10)
	case ir.UintType:
		s = strconv.FormatUint(n.Uint64, 10)
	case ir.FloatType:
		if math.IsNaN(n.Float64) || math.IsInf(n.Float64, 0) {
			return fmt.Errorf("%w: %v at %s", ErrNonFiniteNumber, n.Float64, p)
		}
		s = token.FormatFloat(n.Float64)
	case ir.DecimalType:
		s = n.Decimal.String()
	default:
		return fmt.Errorf("%w: %s at %s", ErrUnencodableType, n.Type, p)
	}
	e.colored(n.Type, ValueColor, s)
	return nil
}

// literal returns the text a number was parsed from, as long as that
// text still reads back as the node's type and value.
func literal(n *ir.Node) (string, bool) {
	if n.Number == "" {
		return "", false
	}
	c := token.Classify(n.Number)
	if c.Type != n.Type {
		return "", false
	}
	switch n.Type {
	case ir.IntType:
		return n.Number, c.Int64 == n.Int64
	case ir.UintType:
		return n.Number, c.Uint64 == n.Uint64
	case ir.FloatType:
		return n.Number, c.Float64 == n.Float64
	case ir.DecimalType:
		return n.Number, c.Decimal.Equal(n.Decimal)
	}
	return "", false
}

// quoteScalar renders v as a key or string value.  When escape is false
// v is written as is unless that would not parse back as one token, or
// it is a :: path reference, which is always quoted.
func quoteScalar(v string, escape bool) string {
	if escape {
		if token.NeedsQuote(v) {
			return token.Quote(v)
		}
		return v
	}
	if isQuoted(v) || (bare(v) && !strings.Contains(v, "::")) {
		return v
	}
	return token.Quote(v)
}

func bare(v string) bool {
	if v == "" || strings.Contains(v, "/*") {
		return false
	}
	for _, r := range v {
		if r <= ' ' || r == 0x7f || strings.ContainsRune(`;,(){}="`, r) {
			return false
		}
	}
	return true
}

func isQuoted(v string) bool {
	return len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"'
}

var commentSanitizer = strings.NewReplacer("*/", "(*)/", "/*", "/(*)")

func sanitizeComment(c string) string {
	return commentSanitizer.Replace(c)
}

func typeName(n *ir.Node) string {
	if n == nil {
		return "nothing"
	}
	return n.Type.String()
}
