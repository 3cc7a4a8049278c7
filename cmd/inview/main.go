// Package main provides the inview command-line tool.
//
// Usage:
//
//	inview check [flags]             Evaluate one element against one viewport
//	inview replay <scenario.yaml>    Replay a scripted scroll/resize session
//	inview version                   Print version information
//
// Examples:
//
//	inview check --top 100 --left 100 --width 300 --height 300 --vw 1366 --vh 768
//	inview replay examples/scenarios/scroll-past.yaml
//	inview replay --json --metrics examples/scenarios/wide-element.yaml
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
