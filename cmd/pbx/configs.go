package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pbxproj/encode"
	"github.com/signadot/pbxproj/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log what commands change'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// outFormat picks the output format from the flags, falling back to the
// extension of the -o file.
func (cfg *MainConfig) outFormat() format.Format {
	fmat := format.PBXProjFormat
	if cfg.Out != "" && cfg.Out != "-" {
		fmat = format.FromPath(cfg.Out)
	}
	switch {
	case cfg.J:
		fmat = format.JSONFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Context int `cli:"name=U desc='lines of diff context'"`
	Check   *cli.Command
}

type DanglingConfig struct {
	*MainConfig
	Dangling *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='selection expression'"`
	Kind  string `cli:"name=kind desc='only records with this isa'"`
	List  *cli.Command
}

type GetConfig struct {
	*MainConfig
	Pos bool `cli:"name=pos desc='print the source position of each record'"`
	Get *cli.Command
}

type RemoveConfig struct {
	*MainConfig
	Write  bool `cli:"name=w desc='write result back to the file'"`
	Remove *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result back to the file'"`
	File  bool `cli:"name=f desc='patch arg as file'"`
	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type NewConfig struct {
	*MainConfig
	New *cli.Command
}
