// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/argv"
)

type classifyParams struct {
	cli.JSONOutput
}

func classifyCommand() *cli.Command {
	var params classifyParams

	return &cli.Command{
		Name:    "classify",
		Summary: "Sort tokens into positionals, options, and flags",
		Description: `Classify tokens the way resolve does after the command path, without
a manifest. Each token becomes a decoded positional, a named option
(--name=value, or --name value when the next token is not dashed), or a
boolean flag (--name, --no-name). Short forms with one dash are
accepted. Every dashed token is a name, so pass negative numbers after
"--".`,
		Usage: "rubycom classify [flags] -- TOKENS...",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("classify", &params)
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			logger.Debug("classifying", "tokens", len(args))
			return writeClassify(os.Stdout, args, &params.JSONOutput)
		},
		Examples: []cli.Example{
			{
				Description: "Mixed positionals, options, and flags",
				Command:     "rubycom classify -- 1 --name=x --tags [a,b] -v --no-color",
			},
		},
	}
}

func writeClassify(w io.Writer, tokens []string, output *cli.JSONOutput) error {
	classified, err := argv.Classify(tokens)
	if err != nil {
		return cli.Categorize(err)
	}
	if done, err := output.EmitJSON(w, newArgumentsRecord(classified)); done {
		return err
	}

	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "positionals:")
	for i, value := range classified.Positionals {
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", i, value.Kind(), value)
	}
	fmt.Fprintln(tw, "options:")
	for _, name := range classified.Options.Names() {
		value, _ := classified.Options.Get(name)
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", name, value.Kind(), value)
	}
	fmt.Fprintln(tw, "flags:")
	for _, name := range classified.Flags.Names() {
		value, _ := classified.Flags.Get(name)
		fmt.Fprintf(tw, "  %s\tbool\t%t\n", name, value)
	}
	return tw.Flush()
}
