// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/version"
)

// Root builds and returns the complete rubycom command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "rubycom",
		Description: `rubycom: command-line argument resolution.

Resolve a token list against a command tree described by a manifest:
walk namespaces to a command, classify the remaining tokens, decode
their values, and bind them to the command's parameters.`,
		Subcommands: []*cli.Command{
			resolveCommand(),
			completeCommand(),
			treeCommand(),
			classifyCommand(),
			decodeCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Resolve tokens against a manifest",
				Command:     "rubycom resolve -m commands.yaml -- Deploy start prod --region=eu-west",
			},
			{
				Description: "Suggest the next command name",
				Command:     "rubycom complete -m commands.yaml -- Deploy st",
			},
			{
				Description: "Print the command tree",
				Command:     "rubycom tree -m commands.yaml",
			},
			{
				Description: "See how a value token decodes",
				Command:     "rubycom decode -- '[1, two, {three: 3}]'",
			},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
			if done, err := params.EmitJSON(os.Stdout, version.Fields()); done {
				return err
			}
			fmt.Printf("rubycom %s\n", version.Full())
			return nil
		},
	}
}
