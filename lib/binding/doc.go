// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package binding binds classified arguments to a command's declared
// parameters.
//
// Parameters are processed in declaration order against a shared working
// copy of the classified buckets:
//
//   - [Required] takes the next positional.
//   - [Optional] takes an option or flag with its name (or its short
//     name), else the next positional, else its default.
//   - [Rest] takes everything left: the positionals in order, followed by
//     one map holding any remaining options and flags.
//
// A parameter's short name is its first character, unless another
// parameter of the same command starts with the same character; then
// neither has a short name.
//
// Arity is checked before binding and again after it: arguments left
// over when there is no Rest parameter are an [*ArityError] rather than
// being dropped.
package binding
