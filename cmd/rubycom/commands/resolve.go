// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
	"github.com/dannypurcell/rubycom-sub000/lib/config"
	"github.com/dannypurcell/rubycom-sub000/lib/router"
)

type resolveParams struct {
	manifestParams
	Format outputFormat `json:"format" flag:"format,f" desc:"output format: text, json, or cbor (default from config)"`
}

func resolveCommand() *cli.Command {
	var params resolveParams

	return &cli.Command{
		Name:    "resolve",
		Summary: "Resolve tokens to a command and bind its arguments",
		Description: `Walk the command tree along the leading tokens until a command is
reached, classify the remaining tokens into positionals, options, and
flags, and bind them to the command's parameters.

Tokens follow a "--" separator so that their own dashes are not read
as rubycom flags. A second "--" inside the tokens ends option parsing
for the resolved command: every later token is positional.

CBOR output written to a terminal is shown in CBOR diagnostic
notation instead of raw bytes.

Exit status is 2 when the tokens do not resolve (unknown command,
malformed option, wrong argument count).`,
		Usage: "rubycom resolve [flags] -- TOKENS...",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("resolve", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			root, cfg, err := params.load(ctx, logger)
			if err != nil {
				return err
			}
			return writeResolve(os.Stdout, root, args, params.Format.or(cfg.Output), logger)
		},
		Examples: []cli.Example{
			{
				Description: "Resolve a nested command with an option",
				Command:     "rubycom resolve -m commands.yaml -- Deploy start prod --region=eu-west",
			},
			{
				Description: "Emit the binding as JSON",
				Command:     "rubycom resolve -f json -- Deploy start prod '[a, b]'",
			},
			{
				Description: "Write deterministic CBOR (shown as diagnostic notation on a terminal)",
				Command:     "rubycom resolve -f cbor -- Deploy start prod > resolution.cbor",
			},
		},
	}
}

// writeResolve resolves tokens against root and writes the result.
func writeResolve(w io.Writer, root commandtree.Node, tokens []string, format config.Output, logger *slog.Logger) error {
	resolution, err := router.Resolve(root, tokens)
	if err != nil {
		logger.Debug("resolution failed", "tokens", len(tokens), "error", err)
		return cli.Categorize(err)
	}

	logger.Debug("resolved",
		"path", strings.Join(resolution.Path, " "),
		"bound", resolution.Binding.Len(),
	)
	return writeResolution(w, resolution, format)
}
