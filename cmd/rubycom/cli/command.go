// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the rubycom command tree: either a group that
// dispatches to Subcommands or a runnable command, or both.
type Command struct {
	// Name is the word that selects this command ("resolve").
	Name string

	// Summary is the one-line description listed in the parent's help.
	Summary string

	// Description is the longer text at the top of the command's own help.
	Description string

	// Usage overrides the synthesized usage line.
	Usage string

	Examples []Example

	// Flags builds the command's flag set. It is called once per parse
	// and once per help rendering. Nil means the command takes no flags.
	Flags func() *pflag.FlagSet

	Subcommands []*Command

	// Run receives the arguments left after flag parsing. Tokens after
	// "--" are passed through as typed.
	Run func(ctx context.Context, args []string, logger *slog.Logger) error

	// Stderr receives help output. Defaults to os.Stderr.
	Stderr io.Writer

	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute runs the command selected by args. The logger handed to Run
// writes to stderr at info level until [ConfigOption.LoadConfig] applies
// the configured level.
func (c *Command) Execute(ctx context.Context, args []string) error {
	level := new(slog.LevelVar)
	return c.execute(withLevel(ctx, level), args, NewCommandLogger(os.Stderr, level))
}

func (c *Command) execute(ctx context.Context, args []string, logger *slog.Logger) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.stderr())
		return nil
	}

	if len(c.Subcommands) > 0 {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			if sub := c.subcommand(args[0]); sub != nil {
				sub.parent = c
				return sub.execute(ctx, args[1:], logger)
			}
			if c.Run == nil {
				return c.unknownCommand(args[0])
			}
		}
		if c.Run == nil {
			c.PrintHelp(c.stderr())
			if len(args) == 0 {
				return Validation("subcommand required")
			}
			return Validation("subcommand required (got flag %q)", args[0])
		}
	}

	args, err := c.parseFlags(args)
	if err != nil {
		return err
	}

	if c.Run == nil {
		c.PrintHelp(c.stderr())
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	return c.Run(ctx, args, logger.With("command", c.path()))
}

func (c *Command) subcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (c *Command) unknownCommand(name string) error {
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return Validation("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
			name, suggestion, c.fullName())
	}
	return Validation("unknown command %q\n\nRun '%s --help' for usage.", name, c.fullName())
}

// parseFlags returns the positional arguments left after flag parsing.
// A command without flags only strips a leading "--".
func (c *Command) parseFlags(args []string) ([]string, error) {
	if c.Flags == nil {
		if len(args) > 0 && args[0] == "--" {
			return args[1:], nil
		}
		return args, nil
	}

	flagSet := c.Flags()
	flagSet.SetOutput(io.Discard)
	err := flagSet.Parse(args)
	if err == nil {
		return flagSet.Args(), nil
	}

	message := err.Error()
	if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
		// A fresh flag set: the failed parse may have set values.
		if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
			return nil, Validation("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
				message, suggestion, c.fullName())
		}
	}
	return nil, Validation("%s\n\nRun '%s --help' for usage.", message, c.fullName())
}

// PrintHelp writes the command's help to w: description, usage,
// subcommands, flags, and examples.
func (c *Command) PrintHelp(w io.Writer) {
	var help strings.Builder

	switch {
	case c.Description != "":
		help.WriteString(c.Description + "\n\n")
	case c.Summary != "":
		help.WriteString(c.Summary + "\n\n")
	}

	fmt.Fprintf(&help, "Usage:\n  %s\n", c.usageLine())

	if len(c.Subcommands) > 0 {
		help.WriteString("\nCommands:\n")
		tw := tabwriter.NewWriter(&help, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if c.Flags != nil {
		if usage := c.Flags().FlagUsages(); usage != "" {
			help.WriteString("\nFlags:\n" + usage)
		}
	}

	if len(c.Examples) > 0 {
		help.WriteString("\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description == "" {
				fmt.Fprintf(&help, "  %s\n", example.Command)
				continue
			}
			fmt.Fprintf(&help, "  # %s\n  %s\n\n", example.Description, example.Command)
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(&help, "\nRun '%s <command> --help' for more information on a command.\n", c.fullName())
	}

	io.WriteString(w, help.String())
}

func (c *Command) usageLine() string {
	switch {
	case c.Usage != "":
		return c.Usage
	case len(c.Subcommands) > 0:
		return c.fullName() + " <command> [flags]"
	default:
		return c.fullName() + " [flags]"
	}
}

// fullName is the command as typed, binary included ("rubycom resolve").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

// path is the logger's "command" attribute: the names below the binary
// joined by "/" ("resolve", "manifest/check").
func (c *Command) path() string {
	if c.parent == nil || c.parent.parent == nil {
		return c.Name
	}
	return c.parent.path() + "/" + c.Name
}

func (c *Command) stderr() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.Stderr != nil {
			return command.Stderr
		}
	}
	return os.Stderr
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
