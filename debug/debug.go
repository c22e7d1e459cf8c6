// Package debug provides env-var gated tracing for the cli tools.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Paths  bool
	Expand bool
}

var d *debug

func init() {
	d = &debug{}
	d.Paths = boolEnv("CLITOOLS_DEBUG_PATHS")
	d.Expand = boolEnv("CLITOOLS_DEBUG_EXPAND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Paths() bool {
	return d.Paths
}

func Expand() bool {
	return d.Expand
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
