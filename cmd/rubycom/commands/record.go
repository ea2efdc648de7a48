// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/argv"
	"github.com/dannypurcell/rubycom-sub000/lib/codec"
	"github.com/dannypurcell/rubycom-sub000/lib/config"
	"github.com/dannypurcell/rubycom-sub000/lib/router"
)

// argumentsRecord is the serializable form of argv.Classified.
type argumentsRecord struct {
	Positionals []any           `json:"positionals"`
	Options     map[string]any  `json:"options"`
	Flags       map[string]bool `json:"flags"`
}

func newArgumentsRecord(classified *argv.Classified) argumentsRecord {
	record := argumentsRecord{
		Positionals: make([]any, 0, len(classified.Positionals)),
		Options:     make(map[string]any, classified.Options.Len()),
		Flags:       make(map[string]bool, classified.Flags.Len()),
	}
	for _, value := range classified.Positionals {
		record.Positionals = append(record.Positionals, value.Interface())
	}
	for _, name := range classified.Options.Names() {
		value, _ := classified.Options.Get(name)
		record.Options[name] = value.Interface()
	}
	for _, name := range classified.Flags.Names() {
		record.Flags[name], _ = classified.Flags.Get(name)
	}
	return record
}

// resolutionRecord is the serializable form of router.Resolution.
// Binding is a map, so Parameters carries the declaration order.
type resolutionRecord struct {
	Command    []string        `json:"command"`
	Summary    string          `json:"summary,omitempty"`
	Parameters []string        `json:"parameters"`
	Binding    map[string]any  `json:"binding"`
	Arguments  argumentsRecord `json:"arguments"`
}

func newResolutionRecord(resolution *router.Resolution) resolutionRecord {
	record := resolutionRecord{
		Command:    resolution.Path,
		Summary:    resolution.Leaf.Summary,
		Parameters: resolution.Binding.Names(),
		Binding:    make(map[string]any, resolution.Binding.Len()),
		Arguments:  newArgumentsRecord(resolution.Arguments),
	}
	for _, name := range record.Parameters {
		value, _ := resolution.Binding.Get(name)
		record.Binding[name] = value.Interface()
	}
	return record
}

// writeResolution renders resolution to w in the given format.
func writeResolution(w io.Writer, resolution *router.Resolution, format config.Output) error {
	switch format {
	case config.JSON:
		return cli.WriteJSON(w, newResolutionRecord(resolution))
	case config.CBOR:
		data, err := codec.Marshal(newResolutionRecord(resolution))
		if err != nil {
			return cli.Internal("encoding resolution: %w", err)
		}
		if cli.IsTerminal(w) {
			notation, err := codec.Diagnose(data)
			if err != nil {
				return cli.Internal("rendering CBOR: %w", err)
			}
			_, err = fmt.Fprintln(w, notation)
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return writeResolutionText(w, resolution)
	}
}

func writeResolutionText(w io.Writer, resolution *router.Resolution) error {
	command := strings.Join(resolution.Path, " ")
	if command == "" {
		command = "(root)"
	}
	fmt.Fprintf(w, "command: %s\n", command)
	if resolution.Leaf.Summary != "" {
		fmt.Fprintf(w, "summary: %s\n", resolution.Leaf.Summary)
	}
	if resolution.Binding.Len() == 0 {
		_, err := fmt.Fprintln(w, "binding: (none)")
		return err
	}

	fmt.Fprintln(w, "binding:")
	tw := tabwriter.NewWriter(w, 2, 0, 1, ' ', 0)
	for _, name := range resolution.Binding.Names() {
		value, _ := resolution.Binding.Get(name)
		fmt.Fprintf(tw, "  %s\t= %s\n", name, value)
	}
	return tw.Flush()
}
