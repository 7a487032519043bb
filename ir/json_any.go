package ir

// ToAny converts node to plain Go values: map[string]any, []any, string,
// bool, nil and numbers.  Decimals become their string form.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case BoolType:
		return node.Bool
	case IntType:
		return node.Int64
	case UintType:
		return node.Uint64
	case FloatType:
		return node.Float64
	case DecimalType:
		return node.Decimal.String()
	default:
		return nil
	}
}
