package main

import (
	"fmt"

	"github.com/signadot/pbxproj/objects"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		p, err := loadProject(arg)
		if err != nil {
			return err
		}
		rs, err := p.Select(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if cfg.Kind != "" {
			kept := rs[:0]
			for _, r := range rs {
				if r.Tag == cfg.Kind {
					kept = append(kept, r)
				}
			}
			rs = kept
		}
		if cfg.Kind != "" && objects.KindOf(cfg.Kind) == objects.KindUnknown {
			theLog.Warn("unknown isa", "kind", cfg.Kind)
		}
		if err := printRecords(cc.Out, p, rs); err != nil {
			return err
		}
	}
	return nil
}
