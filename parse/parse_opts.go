package parse

import (
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/policy"
	"github.com/signadot/pbxproj/token"
)

type parseOpts struct {
	positions   map[*ir.Node]*token.Pos
	forceString func(ir.Path, *ir.Node) bool
}

type ParseOption func(*parseOpts)

// ParsePositions records the start position of every value node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// ForceString replaces the rule deciding which unquoted scalars are read
// as strings.  A nil f classifies every unquoted scalar.
func ForceString(f func(ir.Path, *ir.Node) bool) ParseOption {
	return func(o *parseOpts) { o.forceString = f }
}

func defaultOpts() *parseOpts {
	return &parseOpts{forceString: policy.ForceString}
}
