package pbxproj

import (
	"fmt"

	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/objects"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RecordEnv is what a selection expression sees for each record.
type RecordEnv struct {
	Ref    string         `expr:"ref"`
	Isa    string         `expr:"isa"`
	Kind   string         `expr:"kind"`
	Name   string         `expr:"name"`
	Label  string         `expr:"label"`
	Fields map[string]any `expr:"fields"`
}

// Select returns the records for which where evaluates to true, in store
// order.  An empty where selects every record.
//
//	isa == "PBXNativeTarget" && name startsWith "App"
//	fields.sourceTree == "SDKROOT"
func (p *Project) Select(where string) ([]*objects.Record, error) {
	var prg *vm.Program
	if where != "" {
		var err error
		prg, err = expr.Compile(where, expr.Env(RecordEnv{}), expr.AsBool())
		if err != nil {
			return nil, err
		}
	}
	table := p.Policy()
	var res []*objects.Record
	for r := range p.Objects.All() {
		if prg == nil {
			res = append(res, r)
			continue
		}
		fields, _ := ir.ToAny(r.Node).(map[string]any)
		env := RecordEnv{
			Ref:    r.Ref,
			Isa:    r.Tag,
			Kind:   r.Kind.String(),
			Name:   r.Name(),
			Label:  table.Label(r.Ref),
			Fields: fields,
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("evaluating %q on %s: %w", where, r, err)
		}
		if ok, _ := out.(bool); ok {
			res = append(res, r)
		}
	}
	return res, nil
}
