package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	oldText, err := getText(cfg.String, cc, args[0])
	if err != nil {
		return err
	}
	newText, err := getText(cfg.String, cc, args[1])
	if err != nil {
		return err
	}
	e := cfg.engine()
	if cfg.Rich {
		return renderSpans(cc.Out, e.Spans(oldText, newText), cfg.colorize(cc.Out))
	}
	if _, err := io.WriteString(cc.Out, e.Make(oldText, newText).Text()); err != nil {
		return fmt.Errorf("error writing patches: %w", err)
	}
	return nil
}
