package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		cfg.Remove.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: rm requires an object reference and a file", cli.ErrUsage)
	}
	ref, arg := args[0], args[1]
	p, err := loadProject(arg)
	if err != nil {
		return err
	}
	if _, err := p.Objects.Lookup(ref); err != nil {
		return err
	}
	removed := p.Objects.Remove(ref)
	theLog.Info("removed", "ref", ref, "count", len(removed))
	if cfg.Write {
		return writeProject(cfg.MainConfig, cc, arg, p)
	}
	return output(cfg.MainConfig, cc.Out, p.Doc.Root, p)
}
