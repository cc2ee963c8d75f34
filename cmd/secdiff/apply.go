package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/secdiff"
	"github.com/signadot/secdiff/match"
	"github.com/signadot/secdiff/secfile"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply requires 2 arguments, a patch, and a sections file", cli.ErrUsage)
	}
	patches, err := getPatchText(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	doc, err := getText(false, cc, args[1])
	if err != nil {
		return err
	}
	secs, err := secfile.Decode([]byte(doc))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var m *match.Matcher
	if cfg.Where != "" {
		m, err = match.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	txn := secdiff.NewTransaction(patches)
	if cfg.Merge {
		txn = secdiff.NewMergeTransaction(patches)
	}
	for _, sec := range secs {
		if cfg.Type != "" && sec.SectionType != cfg.Type {
			continue
		}
		if m != nil {
			ok, err := m.Match(sec)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		}
		updated, err := secdiff.ApplyTransaction(sec, txn,
			secdiff.ApplyStrict(cfg.Strict),
			secdiff.ApplyEngine(cfg.engine()))
		if err != nil {
			return fmt.Errorf("error applying to section %q: %w", sec.SectionType, err)
		}
		secs = secfile.Replace(secs, updated)
	}
	d, err := secfile.Encode(secs)
	if err != nil {
		return err
	}
	if _, err := cc.Out.Write(d); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}
