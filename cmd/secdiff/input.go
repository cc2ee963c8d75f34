package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func getText(asString bool, cc *cli.Context, arg string) (string, error) {
	if asString {
		return arg, nil
	}
	var r io.Reader
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", arg, err)
	}
	return string(d), nil
}

func getPatchText(s, f bool, cc *cli.Context, arg string) (string, error) {
	if s && f {
		return "", fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if f {
		return getText(false, cc, arg)
	}
	return arg, nil
}
