package libdiff

import (
	"strings"

	"github.com/signadot/pbxproj/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is one difference between two trees.  From is nil for inserts
// and To is nil for deletes.
type Change struct {
	Path ir.Path
	Op   Op
	From *ir.Node
	To   *ir.Node
}

// Nodes lists the changes turning from into to.  Maps are compared key by
// key.  Lists of strings are compared as sequences, so an insertion in
// the middle of a reference list is one change; other lists are compared
// by position.
func Nodes(from, to *ir.Node) []Change {
	var res []Change
	diffNodes(ir.Path{}, from, to, &res)
	return res
}

func diffNodes(p ir.Path, from, to *ir.Node, res *[]Change) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		*res = append(*res, Change{Path: p, Op: Insert, To: to})
		return
	case to == nil:
		*res = append(*res, Change{Path: p, Op: Delete, From: from})
		return
	case from.Type != to.Type:
		*res = append(*res, Change{Path: p, Op: Replace, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		for i, f := range from.Fields {
			diffNodes(p.Key(f.String), from.Values[i], to.Get(f.String), res)
		}
		for i, f := range to.Fields {
			if from.Index(f.String) == -1 {
				*res = append(*res, Change{Path: p.Key(f.String), Op: Insert, To: to.Values[i]})
			}
		}
	case ir.ArrayType:
		if allStrings(from) && allStrings(to) {
			diffStrings(p, from, to, res)
			return
		}
		n := max(len(from.Values), len(to.Values))
		for i := range n {
			var a, b *ir.Node
			if i < len(from.Values) {
				a = from.Values[i]
			}
			if i < len(to.Values) {
				b = to.Values[i]
			}
			diffNodes(p.Idx(i), a, b, res)
		}
	default:
		if !leafEqual(from, to) {
			*res = append(*res, Change{Path: p, Op: Replace, From: from, To: to})
		}
	}
}

func allStrings(n *ir.Node) bool {
	for _, v := range n.Values {
		if v.Type != ir.StringType || strings.Contains(v.String, "\n") {
			return false
		}
	}
	return true
}

// diffStrings diffs two lists of strings by running a line diff over
// their elements.  Paths index into from for deletes and into to for
// inserts.
func diffStrings(p ir.Path, from, to *ir.Node, res *[]Change) {
	join := func(n *ir.Node) string {
		if len(n.Values) == 0 {
			return ""
		}
		return strings.Join(n.Strings(), "\n") + "\n"
	}
	fi, ti := 0, 0
	for _, d := range Lines(join(from), join(to)) {
		count := strings.Count(d.Text, "\n")
		switch d.Type {
		case diffpatch.DiffEqual:
			fi += count
			ti += count
		case diffpatch.DiffDelete:
			for range count {
				*res = append(*res, Change{Path: p.Idx(fi), Op: Delete, From: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range count {
				*res = append(*res, Change{Path: p.Idx(ti), Op: Insert, To: to.Values[ti]})
				ti++
			}
		}
	}
}

func leafEqual(a, b *ir.Node) bool {
	switch a.Type {
	case ir.NullType:
		return true
	case ir.BoolType:
		return a.Bool == b.Bool
	case ir.StringType:
		return a.String == b.String
	case ir.IntType:
		return a.Int64 == b.Int64
	case ir.UintType:
		return a.Uint64 == b.Uint64
	case ir.FloatType:
		return a.Float64 == b.Float64
	case ir.DecimalType:
		return a.Decimal.Equal(b.Decimal)
	}
	return false
}
