package main

import (
	"fmt"

	"github.com/signadot/pbxproj"

	"github.com/scott-cotton/cli"
)

func newProject(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: new requires a project name", cli.ErrUsage)
	}
	p, err := pbxproj.New(args[0])
	if err != nil {
		return err
	}
	return output(cfg.MainConfig, cc.Out, p.Doc.Root, p)
}
