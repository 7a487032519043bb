package ir

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Int64   int64
	Uint64  uint64
	Float64 float64
	Decimal decimal.Decimal
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Int64 = y.Int64
	dst.Uint64 = y.Uint64
	dst.Float64 = y.Float64
	dst.Decimal = y.Decimal
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := yv.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := yf.CloneTo(&Node{})
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Fields[i] = dstI
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int64: v}
}

func FromUint(v uint64) *Node {
	return &Node{Type: UintType, Uint64: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float64: f}
}

func FromDecimal(d decimal.Decimal) *Node {
	return &Node{Type: DecimalType, Decimal: d}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs...)
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs ...KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, 0, len(ySlice)),
	}
	for _, y := range ySlice {
		res.Append(y)
	}
	return res
}

func FromStrings(vs ...string) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, 0, len(vs)),
	}
	for _, v := range vs {
		res.Append(FromString(v))
	}
	return res
}

// Index returns the position of field in an object node, or -1.
func (y *Node) Index(field string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	for i, f := range y.Fields {
		if f.String == field {
			return i
		}
	}
	return -1
}

func Get(y *Node, field string) *Node {
	return y.Get(field)
}

func (y *Node) Get(field string) *Node {
	i := y.Index(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Set replaces the value of field in place, or appends field if absent.
func (y *Node) Set(field string, v *Node) {
	v.Parent = y
	v.ParentField = field
	if i := y.Index(field); i != -1 {
		v.ParentIndex = i
		y.Values[i].Parent = nil
		y.Values[i] = v
		return
	}
	i := len(y.Fields)
	v.ParentIndex = i
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      field,
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
	})
	y.Values = append(y.Values, v)
}

// Delete removes field, reporting whether it was present.
func (y *Node) Delete(field string) bool {
	i := y.Index(field)
	if i == -1 {
		return false
	}
	y.Values[i].Parent = nil
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	y.reindex(i)
	return true
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Append(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
}

func (y *Node) RemoveAt(i int) {
	y.Values[i].Parent = nil
	y.Values = slices.Delete(y.Values, i, i+1)
	y.reindex(i)
}

func (y *Node) reindex(from int) {
	for j := from; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
		if j < len(y.Fields) {
			y.Fields[j].ParentIndex = j
		}
	}
}

// Strings returns the string elements of an array node.  Non string
// elements are skipped.
func (y *Node) Strings() []string {
	if y == nil || y.Type != ArrayType {
		return nil
	}
	res := make([]string, 0, len(y.Values))
	for _, v := range y.Values {
		if v.Type == StringType {
			res = append(res, v.String)
		}
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
