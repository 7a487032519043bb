package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/pbxproj"
	"github.com/signadot/pbxproj/format"
	"github.com/signadot/pbxproj/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func pbxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelInfo)
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readArg reads a file argument.  "-" is stdin and an .xcodeproj bundle
// stands for the project file inside it.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(format.ResolveProject(arg))
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", arg, err)
	}
	return d, nil
}

func loadProject(arg string) (*pbxproj.Project, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	p, err := pbxproj.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return p, nil
}

// argsOrStdin returns args, or stdin when there are none.
func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// writeProject writes p to arg in place.  Stdin projects go to stdout.
func writeProject(cfg *MainConfig, cc *cli.Context, arg string, p *pbxproj.Project) error {
	if arg == "-" {
		return output(cfg, cc.Out, p.Doc.Root, p)
	}
	d, err := p.Bytes()
	if err != nil {
		return err
	}
	file := format.ResolveProject(arg)
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, d, info.Mode().Perm()); err != nil {
		return err
	}
	theLog.Info("wrote", "file", file, "objects", p.Objects.Len())
	return nil
}

// output writes n in the configured output format.  In pbxproj format a
// node other than the project root is written as a fragment.
func output(cfg *MainConfig, w io.Writer, n *ir.Node, p *pbxproj.Project) error {
	fmat := cfg.outFormat()
	switch {
	case fmat.IsJSON():
		d, err := n.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case fmat.IsYAML():
		d, err := yaml.MarshalWithOptions(toYAML(n), yaml.Indent(2))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if n == p.Doc.Root {
		return p.Encode(w, cfg.encOpts(w)...)
	}
	return fragment(cfg, w, n, p)
}

// toYAML converts n to values go-yaml encodes with map order intact.
func toYAML(n *ir.Node) any {
	switch n.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(n.Fields))
		for i, f := range n.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: toYAML(n.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toYAML(v)
		}
		return res
	}
	return ir.ToAny(n)
}
