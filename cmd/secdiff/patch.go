package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/secdiff"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	patches, err := getPatchText(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	base, err := getText(false, cc, args[1])
	if err != nil {
		return err
	}
	res, err := secdiff.ApplyPatches(base, patches,
		secdiff.ApplyStrict(cfg.Strict),
		secdiff.ApplyEngine(cfg.engine()))
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if _, err := io.WriteString(cc.Out, res); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}
