// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/literal"
)

type decodeParams struct {
	cli.JSONOutput
}

// decodedRecord is one --json entry.
type decodedRecord struct {
	Token string `json:"token"`
	Kind  string `json:"kind"`
	Value any    `json:"value"`
}

func decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode literal tokens and show their types",
		Description: `Decode each token with the literal grammar used for argument values:
integers, floats, booleans, [lists], {maps}, quoted strings, and plain
strings. Decoding never fails; anything unrecognized stays a string.`,
		Usage: "rubycom decode [flags] [--] TOKEN...",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) == 0 {
				return cli.Validation("decode requires at least one token")
			}
			return writeDecode(os.Stdout, args, &params.JSONOutput)
		},
		Examples: []cli.Example{
			{
				Description: "Nested structures",
				Command:     `rubycom decode -- '{a: [1, 2.5], b: "x y"}' -7 True`,
			},
		},
	}
}

func writeDecode(w io.Writer, tokens []string, output *cli.JSONOutput) error {
	records := make([]decodedRecord, 0, len(tokens))
	values := make([]literal.Value, 0, len(tokens))
	for _, token := range tokens {
		value := literal.Decode(token)
		values = append(values, value)
		records = append(records, decodedRecord{Token: token, Kind: value.Kind().String(), Value: value.Interface()})
	}
	if done, err := output.EmitJSON(w, records); done {
		return err
	}

	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	for i, token := range tokens {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", strconv.Quote(token), values[i].Kind(), values[i])
	}
	return tw.Flush()
}
