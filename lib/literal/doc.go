// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package literal decodes raw command-line tokens into typed values.
//
// [Value] is a closed tagged union over nil, booleans, 64-bit integers,
// floats, strings, ordered lists, and string-keyed maps. [Decode] maps a
// token onto it using a small, bounded grammar, tried in order:
//
//  1. "" decodes to nil.
//  2. An optionally signed run of digits decodes to an integer.
//  3. A decimal or exponent form (1.5, .5, 2e3) decodes to a float.
//  4. true/false, in any letter case, decode to a boolean.
//  5. [a, b] decodes to a list and {k: v} to a map. Elements are trimmed
//     and decoded recursively; nesting and quoting are respected.
//  6. A token wrapped in matching single or double quotes decodes to the
//     string between the quotes, uninterpreted.
//  7. Anything else is the raw token as a string.
//
// Decoding never fails. Input that looks structured but is not
// well-formed (unbalanced brackets, a map element without a key) falls
// through to the raw string. Elements nested deeper than [MaxDepth] are
// kept as raw strings.
//
// This package has no dependencies outside the standard library.
package literal
