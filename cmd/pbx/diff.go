package main

import (
	"fmt"
	"io"

	"github.com/signadot/pbxproj"
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	from, err := loadProject(args[0])
	if err != nil {
		return err
	}
	to, err := loadProject(args[1])
	if err != nil {
		return err
	}
	n, err := diffProjects(cc.Out, from, to)
	if err != nil {
		return err
	}
	if n != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffProjects writes one line per changed object or field and returns
// the number of lines written.
func diffProjects(w io.Writer, from, to *pbxproj.Project) (int, error) {
	n := 0
	emit := func(format string, args ...any) error {
		n++
		_, err := fmt.Fprintf(w, format+"\n", args...)
		return err
	}
	fromTable, toTable := from.Policy(), to.Policy()
	for r := range from.Objects.All() {
		o, err := to.Objects.Lookup(r.Ref)
		if err != nil {
			if err := emit("%s %s %s /* %s */", libdiff.Delete, r.Ref, r.Tag, fromTable.Label(r.Ref)); err != nil {
				return n, err
			}
			continue
		}
		for _, c := range libdiff.Nodes(r.Node, o.Node) {
			if err := emit("%s %s%s %s", c.Op, r.Ref, c.Path, describe(c)); err != nil {
				return n, err
			}
		}
	}
	for r := range to.Objects.All() {
		if _, err := from.Objects.Lookup(r.Ref); err == nil {
			continue
		}
		if err := emit("%s %s %s /* %s */", libdiff.Insert, r.Ref, r.Tag, toTable.Label(r.Ref)); err != nil {
			return n, err
		}
	}
	return n, nil
}

func describe(c libdiff.Change) string {
	switch c.Op {
	case libdiff.Insert:
		return compact(c.To)
	case libdiff.Delete:
		return compact(c.From)
	}
	return compact(c.From) + " -> " + compact(c.To)
}

func compact(n *ir.Node) string {
	if n == nil {
		return "null"
	}
	d, err := n.MarshalJSON()
	if err != nil {
		return "?"
	}
	return string(d)
}
