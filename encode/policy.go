package encode

import "github.com/signadot/pbxproj/ir"

// Policy decides layout and annotation for the values of a document.
// Every method receives the path of the value in question.
type Policy interface {
	// KeyOrder returns the indices of n's fields in output order.
	KeyOrder(p ir.Path, n *ir.Node) []int
	// SingleLine reports whether the map n renders on one line.
	SingleLine(p ir.Path, n *ir.Node) bool
	// Escape reports whether the string at p is quoted when needed.
	// When false, the string is written as is whenever that parses back.
	Escape(p ir.Path) bool
	// EscapeKey is Escape for the key of the value at p.
	EscapeKey(p ir.Path) bool
	// Comment returns the annotation written after the string v found at
	// p, either a key or a value, or "" for none.
	Comment(p ir.Path, v string) string
	// Sections reports whether the entries of the map at p are grouped
	// by their isa.
	Sections(p ir.Path) bool
}

type nopPolicy struct{}

func (nopPolicy) KeyOrder(_ ir.Path, n *ir.Node) []int {
	res := make([]int, len(n.Fields))
	for i := range res {
		res[i] = i
	}
	return res
}
func (nopPolicy) SingleLine(ir.Path, *ir.Node) bool { return false }
func (nopPolicy) Escape(ir.Path) bool               { return true }
func (nopPolicy) EscapeKey(ir.Path) bool            { return true }
func (nopPolicy) Comment(ir.Path, string) string    { return "" }
func (nopPolicy) Sections(ir.Path) bool             { return false }
