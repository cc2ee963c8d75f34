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
			Name:        "threshold",
			Description: "fuzzy match tolerance in [0,1]",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkThreshold()), "(float)"),
		},
		&cli.Opt{
			Name:        "timeout",
			Description: "diff computation timeout",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkTimeout()), "(duration)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "secdiff").
		WithSynopsis("secdiff [opts] command [opts]").
		WithDescription("secdiff is a tool for diffing and patching document sections.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return secMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			PatchCommand(cfg),
			ApplyCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] <old> <new>").
		WithDescription("diff two texts into portable patch text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patch> <file>").
		WithDescription("apply patch text to a file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [opts] <patch> <sectionsfile>").
		WithDescription("apply a transaction to sections of a sections document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}
