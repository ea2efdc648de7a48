// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the rubycom command tree: resolve, complete,
// tree, classify, decode, and version.
//
// Each command's Run is a thin wrapper that loads configuration and the
// manifest, then calls a write* function taking an explicit io.Writer.
// Tests exercise the write* functions directly.
package commands
