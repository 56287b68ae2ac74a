// Package main provides the entry point for the stacgen CLI tool.
package main

import (
	"os"

	"github.com/trendsearth/stacgen/cmd/stacgen/cmd"
)

// Version information populated by the build system.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cmd.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
