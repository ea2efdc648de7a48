// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package commandtree defines the command tree that routing and
// completion run over.
//
// A tree is built from two node variants: [*Namespace], an internal node
// holding named children in declaration order, and [*Leaf], an invocable
// command holding its parameter declarations. [Node] is sealed to these
// two types.
//
// Trees are assembled once, by whatever discovers the commands (see
// lib/manifest), and are read-only afterwards. Nothing in this module
// mutates a tree after [Validate] has accepted it, so one tree can serve
// any number of concurrent resolutions.
package commandtree
