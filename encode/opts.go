package encode

type EncodeOption func(*EncState)

func WithPolicy(p Policy) EncodeOption {
	return func(es *EncState) { es.policy = p }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// Indent sets the string written once per nesting level.
func Indent(v string) EncodeOption {
	return func(es *EncState) { es.indent = v }
}

// TrailingCommas makes multi-line and single-line lists end every
// element, the last one included, with a comma.
func TrailingCommas(v bool) EncodeOption {
	return func(es *EncState) { es.trailing = v }
}
