// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package argv classifies the tokens left over after command routing
// into positionals, named options, and boolean flags.
//
// A name is a run of word characters (letters, digits, underscore)
// introduced by one or two dashes. Tokens are read left to right:
//
//	-no-name, --no-name   flag name = false
//	-name=value           option name = value
//	-name value           option name = value, when value has no leading dash
//	-name                 flag name = true
//	anything else         positional
//
// Values are decoded with [literal.Decode]. Any token with a leading dash
// is read as an option or flag, so "-5" is the flag "5" and "-0.25" is
// malformed. A bare "--" ends option processing: every later token is a
// positional, which is how negative numbers are passed.
//
// Repeating an option merges its values into a list ([literal.Merge]).
// The first syntactic form seen for a name decides its bucket. A later
// mention in the other form is folded into that bucket: a flag mentioned
// with a value takes the value's truth, and an option mentioned as a
// bare flag gains a boolean element.
package argv
