package main

import (
	"fmt"
	"io"

	"github.com/signadot/pbxproj"
	"github.com/signadot/pbxproj/encode"
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/parse"
	"github.com/signadot/pbxproj/token"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object reference", cli.ErrUsage)
	}
	ref := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		if err := getArg(cfg, cc.Out, arg, ref); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", ref, arg, err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, w io.Writer, arg, ref string) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	pos := map[*ir.Node]*token.Pos{}
	doc, err := parse.Parse(d, parse.ParsePositions(pos))
	if err != nil {
		return err
	}
	p, err := pbxproj.FromDocument(doc)
	if err != nil {
		return err
	}
	r, err := p.Objects.Lookup(ref)
	if err != nil {
		return err
	}
	if cfg.Pos {
		if at := pos[r.Node]; at != nil {
			line, col := at.LineCol()
			if _, err := fmt.Fprintf(w, "%s:%d:%d\n", arg, line, col); err != nil {
				return err
			}
		}
	}
	return output(cfg.MainConfig, w, r.Node, p)
}

// fragment writes a node of p in project syntax, laid out as it would be
// inside the file.
func fragment(cfg *MainConfig, w io.Writer, n *ir.Node, p *pbxproj.Project) error {
	opts := []encode.EncodeOption{
		encode.WithPolicy(p.Policy()),
		encode.Indent(p.Doc.Indent),
		encode.TrailingCommas(p.Doc.TrailingCommas),
	}
	return encode.EncodeNode(n, n.Path(), w, append(opts, cfg.encOpts(w)...)...)
}
