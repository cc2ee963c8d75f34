package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/secdiff/libdiff"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize rich diff output'"`

	Distance int `cli:"name=distance desc='fuzzy match distance in characters'"`
	Margin   int `cli:"name=margin desc='context characters recorded around each hunk'"`

	Threshold    float64
	ThresholdSet bool
	Timeout      time.Duration

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) mkThreshold() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		cfg.Threshold = v
		cfg.ThresholdSet = true
		return v, nil
	}
}

func (cfg *MainConfig) mkTimeout() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Timeout = d
		return d, nil
	}
}

func (cfg *MainConfig) engineOpts() []libdiff.Option {
	var res []libdiff.Option
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	for _, opt := range cfg.Main.Opts {
		if opt.Value == nil {
			continue
		}
		switch opt.Name {
		case "distance":
			res = append(res, libdiff.MatchDistance((*opt.Value).(int)))
		case "margin":
			res = append(res, libdiff.PatchMargin((*opt.Value).(int)))
		}
	}
	if cfg.ThresholdSet {
		res = append(res, libdiff.MatchThreshold(cfg.Threshold))
	}
	if cfg.Timeout > 0 {
		res = append(res, libdiff.DiffTimeout(cfg.Timeout))
	}
	return res
}

func (cfg *MainConfig) engine() *libdiff.Engine {
	opts := cfg.engineOpts()
	if len(opts) == 0 {
		return libdiff.Default
	}
	return libdiff.New(opts...)
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
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
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='treat args as literal text'"`
	Rich   bool `cli:"name=rich desc='render an inline diff instead of patch text'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file path'"`
	Strict bool `cli:"name=strict desc='fail if any hunk does not locate'"`

	Patch *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	String bool   `cli:"name=s desc='patch arg as string'"`
	File   bool   `cli:"name=f desc='patch arg as file path'"`
	Type   string `cli:"name=t desc='apply only to this section type'"`
	Where  string `cli:"name=where desc='apply only to sections matching this expression'"`
	Merge  bool   `cli:"name=merge desc='patch is an RFC 7386 JSON merge patch'"`
	Strict bool   `cli:"name=strict desc='fail if any hunk does not locate'"`

	Apply *cli.Command
}
