package token

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/signadot/pbxproj/ir"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		typ  ir.Type
		want string
	}{
		{"3", ir.UintType, "3"},
		{"-3", ir.IntType, "-3"},
		{"3.5", ir.FloatType, "3.5"},
		{"2147483647", ir.UintType, "2147483647"},
		{"18446744073709551615", ir.UintType, "18446744073709551615"},
		{"18446744073709551616", ir.FloatType, "1.8446744073709552e+19"},
		{"-9223372036854775808", ir.IntType, "-9223372036854775808"},
		{strings.Repeat("9", 25), ir.FloatType, "1e+25"},
		{"1.0e300", ir.FloatType, "1e+300"},
		{"1.23456789012345678e10", ir.DecimalType, "12345678901.2345678"},
		{"true", ir.BoolType, "true"},
		{"TRUE", ir.BoolType, "true"},
		{"False", ir.BoolType, "false"},
		{"nil", ir.NullType, ""},
		{"NULL", ir.NullType, ""},
		{"1.0.0", ir.StringType, "1.0.0"},
		{"-1e5", ir.StringType, "-1e5"},
		{"1e400", ir.StringType, "1e400"},
		{"PBXGroup", ir.StringType, "PBXGroup"},
		{"0AB1", ir.StringType, "0AB1"},
	}
	for _, tt := range tests {
		n := Classify(tt.in)
		if n.Type != tt.typ {
			t.Errorf("Classify(%q) type %s, want %s", tt.in, n.Type, tt.typ)
			continue
		}
		var got string
		switch n.Type {
		case ir.UintType:
			got = strconv.FormatUint(n.Uint64, 10)
		case ir.IntType:
			got = strconv.FormatInt(n.Int64, 10)
		case ir.FloatType:
			got = FormatFloat(n.Float64)
		case ir.DecimalType:
			got = n.Decimal.String()
		case ir.BoolType:
			if n.Bool {
				got = "true"
			} else {
				got = "false"
			}
		case ir.StringType:
			got = n.String
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if n.Type.IsNumber() && n.Number != tt.in {
			t.Errorf("Classify(%q) kept literal %q", tt.in, n.Number)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{-0.25, "-0.25"},
		{1234567, "1234567"},
		{1e300, "1e+300"},
		{0.00001, "1e-05"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"My File.txt", true},
		{"main.swift", false},
		{"ABCDEF0123456789ABCDEF0", false},
		{"usr/lib/libz.dylib", false},
		{"$(inherited)", true},
		{"<group>", true},
		{"@executable_path/Frameworks", true},
		{"com.apple.product-type.application", true},
		{"a+b", true},
		{"x=y", true},
		{"tab\there", true},
		{"line\nbreak", true},
		{"Proj::Target", true},
		{"https://example.com/repo", true},
		{"semi;colon", true},
		{"Café", true},
		{"SDKROOT", false},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.in); got != tt.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuoteUnescape(t *testing.T) {
	tests := []struct {
		in, quoted string
	}{
		{`My File.txt`, `"My File.txt"`},
		{"a\tb\nc\rd", `"a\tb\nc\rd"`},
		{`say "hi" \o/`, `"say \"hi\" \\o/"`},
		{"", `""`},
	}
	for _, tt := range tests {
		q := Quote(tt.in)
		if q != tt.quoted {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, q, tt.quoted)
		}
		if got := Unescape(q[1 : len(q)-1]); got != tt.in {
			t.Errorf("Unescape(%s) = %q, want %q", q, got, tt.in)
		}
	}
	if got := Unescape(`a\qb\`); got != `a\qb\` {
		t.Errorf("unknown escapes should be kept, got %q", got)
	}
}

func TestHeader(t *testing.T) {
	name, ok := ParseHeader("// !$*UTF8*$!")
	if !ok || name != "UTF8" {
		t.Fatalf("ParseHeader = %q, %v", name, ok)
	}
	if Header(name) != "// !$*UTF8*$!" {
		t.Errorf("Header(%q) = %q", name, Header(name))
	}
	for _, bad := range []string{"", "// !$**$!", "{", "// UTF8"} {
		if _, ok := ParseHeader(bad); ok {
			t.Errorf("ParseHeader(%q) accepted", bad)
		}
	}
}

func TestCharset(t *testing.T) {
	cs, err := LookupCharset("UTF8")
	if err != nil {
		t.Fatal(err)
	}
	if !cs.IsUTF8() {
		t.Errorf("UTF8 not recognized as utf-8")
	}
	if _, err := cs.Decode([]byte{'a', 0xff}); !errors.Is(err, ErrBadUTF8) {
		t.Errorf("expected ErrBadUTF8, got %v", err)
	}

	latin, err := LookupCharset("ISO-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	s, err := latin.Decode([]byte{'C', 'a', 'f', 0xe9})
	if err != nil {
		t.Fatal(err)
	}
	if s != "Café" {
		t.Errorf("decoded %q", s)
	}
	d, err := latin.Encode("Café")
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "Caf\xe9" {
		t.Errorf("encoded %q", d)
	}
	if _, err := latin.Encode("日本"); !errors.Is(err, ErrUnrepresentable) {
		t.Errorf("expected ErrUnrepresentable, got %v", err)
	}

	if _, err := LookupCharset("NOT-A-CHARSET"); !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("expected ErrUnknownCharset, got %v", err)
	}
}

func TestPosDoc(t *testing.T) {
	d := NewPosDoc("ab\ncd\n\nef")
	tests := []struct {
		off, line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{7, 4, 1},
		{8, 4, 2},
	}
	for _, tt := range tests {
		l, c := d.LineCol(tt.off)
		if l != tt.line || c != tt.col {
			t.Errorf("LineCol(%d) = %d:%d, want %d:%d", tt.off, l, c, tt.line, tt.col)
		}
	}
}
