// Package main is the entry point for the sln CLI.
//
// The binary queries .NET solution container files. All functionality
// lives in the internal/cli package, which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during release builds and default to development placeholders.
package main

import (
	"github.com/mmr-tortoise/sln/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
