package token

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/pbxproj/ir"

	"github.com/shopspring/decimal"
)

const (
	maxDoubleDigits = 17
	minDecimalExp   = -128
	maxDecimalExp   = 127
	maxIntDigits    = 19
	maxUintDigits   = 20
)

var (
	expNumber   = regexp.MustCompile(`^\+?(\d+)(?:\.(\d+))?[eE]([+-]?\d+)$`)
	plainNumber = regexp.MustCompile(`^[+-]?(\d+)(?:\.(\d+))?$`)
)

// Classify turns an unquoted scalar into a node.  Keywords become bools
// and nulls, numeric shapes become the narrowest numeric type that holds
// them, and everything else stays a string.
func Classify(v string) *ir.Node {
	switch strings.ToLower(v) {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "null", "nil":
		return ir.Null()
	}
	var res *ir.Node
	if m := expNumber.FindStringSubmatch(v); m != nil {
		res = expNode(v, m)
	} else if m := plainNumber.FindStringSubmatch(v); m != nil {
		res = plainNode(v, m)
	}
	if res == nil {
		return ir.FromString(v)
	}
	res.Number = v
	return res
}

func expNode(v string, m []string) *ir.Node {
	digits := len(m[1]) + len(m[2])
	exp, err := strconv.Atoi(m[3])
	if err == nil && digits > maxDoubleDigits && exp >= minDecimalExp && exp <= maxDecimalExp {
		d, err := decimal.NewFromString(strings.TrimPrefix(v, "+"))
		if err != nil {
			return nil
		}
		return ir.FromDecimal(d)
	}
	return floatNode(v)
}

func plainNode(v string, m []string) *ir.Node {
	if m[2] == "" {
		digits := len(m[1])
		switch {
		case v[0] == '-' && digits <= maxIntDigits:
			if i, err := strconv.ParseInt(v, 10, 64); err == nil {
				return ir.FromInt(i)
			}
		case v[0] != '-' && digits <= maxUintDigits:
			if u, err := strconv.ParseUint(strings.TrimPrefix(v, "+"), 10, 64); err == nil {
				return ir.FromUint(u)
			}
		}
	}
	return floatNode(v)
}

func floatNode(v string) *ir.Node {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return ir.FromFloat(f)
}

// FormatFloat renders f the way the IDE does: no exponent for ordinary
// magnitudes and no trailing ".0" on integral values.
func FormatFloat(f float64) string {
	a := f
	if a < 0 {
		a = -a
	}
	var s string
	if a != 0 && (a >= 1e16 || a < 1e-4) {
		s = strconv.FormatFloat(f, 'g', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.TrimSuffix(s, ".0")
}
