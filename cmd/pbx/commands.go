package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: pbxproj/p, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "pbx").
		WithSynopsis("pbx [opts] command [opts]").
		WithDescription("pbx reads, checks and edits Xcode project files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pbxMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			CheckCommand(cfg),
			DanglingCommand(cfg),
			ListCommand(cfg),
			GetCommand(cfg),
			RemoveCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg),
			NewCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("re-encode project files, optionally as json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-U n] files").
		WithDescription("check that project files survive a decode and encode unchanged").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DanglingCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DanglingConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dangling, "dangling").
		WithAliases("dang").
		WithSynopsis("dangling [files]").
		WithDescription("list objects which are not reachable from the root object").
		WithRun(func(cc *cli.Context, args []string) error {
			return dangling(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-kind isa] [-where expr] [files]").
		WithDescription("list or query objects in project files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-pos] <ref> [files]").
		WithDescription("print one object from project files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemoveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Remove, "rm").
		WithAliases("remove").
		WithSynopsis("rm [-w] <ref> file").
		WithDescription("remove an object and everything it owns").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-w] [-f] <ref> <json-patch> file").
		WithDescription("apply a json patch to one object").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-r] from to").
		WithDescription("compare the objects of two project files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func NewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.New, "new").
		WithSynopsis("new <name>").
		WithDescription("write an empty project").
		WithRun(func(cc *cli.Context, args []string) error {
			return newProject(cfg, cc, args)
		})
}
