// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/commands"
)

func TestCommandTreeIsComplete(t *testing.T) {
	root := commands.Root()

	var check func(command *cli.Command, depth int)
	check = func(command *cli.Command, depth int) {
		if depth > 0 && command.Summary == "" {
			t.Errorf("%s has no summary", command.Name)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s has neither Run nor subcommands", command.Name)
		}
		if command.Flags != nil && command.Flags() == nil {
			t.Errorf("%s returns a nil flag set", command.Name)
		}
		names := make(map[string]bool)
		for _, sub := range command.Subcommands {
			if names[sub.Name] {
				t.Errorf("%s has duplicate subcommand %q", command.Name, sub.Name)
			}
			names[sub.Name] = true
			check(sub, depth+1)
		}
	}
	check(root, 0)
}
