package main

import (
	"fmt"
	"io"

	"github.com/signadot/pbxproj"
	"github.com/signadot/pbxproj/objects"

	"github.com/scott-cotton/cli"
)

func dangling(cfg *DanglingConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dangling.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range argsOrStdin(args) {
		p, err := loadProject(arg)
		if err != nil {
			return err
		}
		if err := printRecords(cc.Out, p, p.Objects.Dangling()); err != nil {
			return err
		}
	}
	return nil
}

func printRecords(w io.Writer, p *pbxproj.Project, rs []*objects.Record) error {
	table := p.Policy()
	for _, r := range rs {
		line := r.Ref + " " + r.Tag
		if label := table.Label(r.Ref); label != "" {
			line += " /* " + label + " */"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
