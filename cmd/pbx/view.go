package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	args = argsOrStdin(args)
	for i, arg := range args {
		if err := viewFile(cfg, cc.Out, arg); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	p, err := loadProject(file)
	if err != nil {
		return err
	}
	if err := output(cfg.MainConfig, w, p.Doc.Root, p); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
