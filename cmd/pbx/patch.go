package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: patch requires an object reference, a patch and a file", cli.ErrUsage)
	}
	ref, arg := args[0], args[2]
	ops := []byte(args[1])
	if cfg.File {
		ops, err = readArg(args[1])
		if err != nil {
			return err
		}
	}
	p, err := loadProject(arg)
	if err != nil {
		return err
	}
	if err := p.PatchRecord(ref, ops); err != nil {
		return err
	}
	theLog.Info("patched", "ref", ref)
	if cfg.Write {
		return writeProject(cfg.MainConfig, cc, arg, p)
	}
	return output(cfg.MainConfig, cc.Out, p.Doc.Root, p)
}
