// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the rubycom binary.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in cmd/rubycom/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework suggests
// the closest known name using the same ranking the resolution engine
// applies to manifest commands ([router.Suggest]).
//
// Parameter structs declare flags through struct tags ([BindFlags]).
// Two embeddable structs cover the shared flags: [JSONOutput] adds
// --json, and [ConfigOption] adds --config and loads the configuration
// file, adjusting the command logger's level to match.
//
// Errors from the resolution engine are mapped onto [ToolError]
// categories by [Categorize] so callers and scripts can tell bad input
// from unknown commands from I/O failures.
package cli
