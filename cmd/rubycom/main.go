// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// rubycom resolves command-line tokens against a command tree read from
// a manifest file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError with
		// the desired exit code. Don't print a redundant "error:" line
		// for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitStatus(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return commands.Root().Execute(ctx, os.Args[1:])
}
