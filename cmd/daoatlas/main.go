// Package main provides the entry point for the daoatlas CLI tool.
package main

import (
	"context"
	"os"

	"github.com/daoatlas/daoatlas/cmd/daoatlas/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Signal handling for graceful shutdown; the crawl loops watch the
	// context and stop between organizations.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
