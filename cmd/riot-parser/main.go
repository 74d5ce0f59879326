// Package main is the entry point for the riot-parser CLI.
package main

import (
	"errors"
	"os"

	"github.com/riot/parser/internal/cli"
	"github.com/riot/parser/internal/logging"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// The diagnostic was already printed.
		if !errors.Is(err, cli.ErrParseFailed) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return 1
	}

	return 0
}
