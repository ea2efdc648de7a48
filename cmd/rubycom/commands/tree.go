// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/binding"
	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
)

type treeParams struct {
	manifestParams
	cli.JSONOutput
}

func treeCommand() *cli.Command {
	var params treeParams

	return &cli.Command{
		Name:    "tree",
		Summary: "Validate a manifest and print its command tree",
		Description: `Load the manifest, validate the command tree, and print every
namespace and command with its parameter signature:

  <name>          required
  [name=default]  optional
  [name...]       rest

Output is colored when stdout is a terminal.`,
		Usage: "rubycom tree [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tree", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}
			root, _, err := params.load(ctx, logger)
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(os.Stdout, commandRecords(root)); done {
				return err
			}
			theme := plainTheme()
			if cli.IsTerminal(os.Stdout) {
				theme = styledTheme()
			}
			return writeTree(os.Stdout, root, theme)
		},
		Examples: []cli.Example{
			{
				Description: "Check a manifest before shipping it",
				Command:     "rubycom tree -m commands.toml",
			},
		},
	}
}

// treeTheme styles the parts of a tree line.
type treeTheme struct {
	namespace func(string) string
	leaf      func(string) string
	parameter func(string) string
	summary   func(string) string
	branch    func(string) string
}

func plainTheme() treeTheme {
	identity := func(s string) string { return s }
	return treeTheme{
		namespace: identity,
		leaf:      identity,
		parameter: identity,
		summary:   identity,
		branch:    identity,
	}
}

func styledTheme() treeTheme {
	render := func(style lipgloss.Style) func(string) string {
		return func(s string) string { return style.Render(s) }
	}
	return treeTheme{
		namespace: render(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))),
		leaf:      render(lipgloss.NewStyle().Foreground(lipgloss.Color("10"))),
		parameter: render(lipgloss.NewStyle().Foreground(lipgloss.Color("244"))),
		summary:   render(lipgloss.NewStyle().Italic(true).Faint(true)),
		branch:    render(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))),
	}
}

// writeTree prints root with box-drawing branches. A leaf root prints
// as a single "(root)" line.
func writeTree(w io.Writer, root commandtree.Node, theme treeTheme) error {
	var builder strings.Builder
	switch node := root.(type) {
	case *commandtree.Leaf:
		builder.WriteString(leafLine("(root)", node, theme))
		builder.WriteByte('\n')
	case *commandtree.Namespace:
		writeChildren(&builder, node, "", theme)
	}
	_, err := io.WriteString(w, builder.String())
	return err
}

func writeChildren(builder *strings.Builder, namespace *commandtree.Namespace, indent string, theme treeTheme) {
	names := namespace.Names()
	for i, name := range names {
		branch, nextIndent := "├── ", indent+"│   "
		if i == len(names)-1 {
			branch, nextIndent = "└── ", indent+"    "
		}
		builder.WriteString(theme.branch(indent + branch))

		child, _ := namespace.Child(name)
		switch node := child.(type) {
		case *commandtree.Namespace:
			builder.WriteString(theme.namespace(name))
			builder.WriteByte('\n')
			writeChildren(builder, node, nextIndent, theme)
		case *commandtree.Leaf:
			builder.WriteString(leafLine(name, node, theme))
			builder.WriteByte('\n')
		}
	}
}

func leafLine(name string, leaf *commandtree.Leaf, theme treeTheme) string {
	line := theme.leaf(name)
	for _, spec := range leaf.Parameters {
		line += " " + theme.parameter(signature(spec))
	}
	if leaf.Summary != "" {
		line += "  " + theme.summary(leaf.Summary)
	}
	return line
}

// signature renders a parameter the way help text conventionally does.
func signature(spec binding.ParameterSpec) string {
	switch spec.Kind {
	case binding.Optional:
		if value, ok := spec.Default.Value(); ok && !value.IsNil() {
			return fmt.Sprintf("[%s=%s]", spec.Name, value)
		}
		return "[" + spec.Name + "]"
	case binding.Rest:
		return "[" + spec.Name + "...]"
	default:
		return "<" + spec.Name + ">"
	}
}

// parameterRecord and commandRecord are the --json form of the tree.
type parameterRecord struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Default any    `json:"default,omitempty"`
}

type commandRecord struct {
	Command    []string          `json:"command"`
	Summary    string            `json:"summary,omitempty"`
	Parameters []parameterRecord `json:"parameters"`
}

func commandRecords(root commandtree.Node) []commandRecord {
	var records []commandRecord
	_ = commandtree.Walk(root, func(path []string, node commandtree.Node) error {
		leaf, ok := node.(*commandtree.Leaf)
		if !ok {
			return nil
		}
		record := commandRecord{
			Command:    append([]string{}, path...),
			Summary:    leaf.Summary,
			Parameters: make([]parameterRecord, 0, len(leaf.Parameters)),
		}
		for _, spec := range leaf.Parameters {
			parameter := parameterRecord{Name: spec.Name, Kind: spec.Kind.String()}
			if value, ok := spec.Default.Value(); ok {
				parameter.Default = value.Interface()
			}
			record.Parameters = append(record.Parameters, parameter)
		}
		records = append(records, record)
		return nil
	})
	return records
}
