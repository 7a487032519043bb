package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/pbxproj"
	"github.com/signadot/pbxproj/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	failed := 0
	for _, arg := range args {
		ok, err := checkFile(cfg, cc.Out, arg)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed != 0 {
		theLog.Warn("files do not round trip", "count", failed)
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, w io.Writer, arg string) (bool, error) {
	in, err := readArg(arg)
	if err != nil {
		return false, err
	}
	p, err := pbxproj.Decode(in)
	if err != nil {
		return false, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	out, err := p.Bytes()
	if err != nil {
		return false, fmt.Errorf("error encoding %s: %w", arg, err)
	}
	if bytes.Equal(in, out) {
		return true, nil
	}
	u := libdiff.Unified(arg, arg+" (encoded)", string(in), string(out), cfg.Context)
	_, err = io.WriteString(w, u)
	return false, err
}
