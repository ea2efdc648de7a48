// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package router resolves a token list against a command tree.
//
// [Route] descends from the root one token at a time, looking each token
// up by exact name among the current namespace's children. It stops at
// the first leaf. Running out of tokens inside a namespace is a
// [*NoCommandSpecifiedError]; a token that names no child is an
// [*InvalidCommandError]. There is no backtracking and no skipping.
//
// [Resolve] routes and then hands the tokens after the leaf to
// [argv.Classify] and [binding.Bind], returning the leaf's path together
// with the bound values. Errors from those packages are returned
// unchanged.
//
// When a token names no child, the error carries the closest sibling
// name as a suggestion. Candidates that contain the token's characters
// in order are ranked first (lithammer/fuzzysearch); otherwise the
// sibling within an edit distance of 3 wins.
package router
