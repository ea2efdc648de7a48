// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
	"github.com/dannypurcell/rubycom-sub000/lib/completion"
)

type completeParams struct {
	manifestParams
	cli.JSONOutput
}

func completeCommand() *cli.Command {
	var params completeParams

	return &cli.Command{
		Name:    "complete",
		Summary: "Suggest completions for a partial command line",
		Description: `Print the command names that can follow a partial command line, one
per line. The last token is treated as a prefix of the next name; the
earlier tokens must name namespaces exactly.

Nothing is printed, and the exit status is 1, when the partial line is
already complete or cannot be extended. Shell completion scripts call this command with the words
typed so far.`,
		Usage: "rubycom complete [flags] -- PARTIAL...",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("complete", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			root, _, err := params.load(ctx, logger)
			if err != nil {
				return err
			}
			return writeComplete(os.Stdout, root, args, &params.JSONOutput)
		},
		Examples: []cli.Example{
			{
				Description: "List top-level commands",
				Command:     "rubycom complete --",
			},
			{
				Description: "Complete a subcommand prefix",
				Command:     "rubycom complete -- Deploy st",
			},
		},
	}
}

func writeComplete(w io.Writer, root commandtree.Node, partial []string, output *cli.JSONOutput) error {
	if output.OutputJSON {
		_, err := output.EmitJSON(w, completion.Complete(root, partial))
		return err
	}
	found := false
	for suggestion := range completion.Suggestions(root, partial) {
		found = true
		if _, err := fmt.Fprintln(w, suggestion); err != nil {
			return err
		}
	}
	if !found {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
