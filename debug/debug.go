// Package debug provides env-var gated debug logging.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Diff  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("SECDIFF_DEBUG_DIFF")
	d.Patch = boolEnv("SECDIFF_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
