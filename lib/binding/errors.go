// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrArity matches any [*ArityError] under errors.Is.
	ErrArity = errors.New("wrong number of arguments")

	// ErrMissingRequiredArgument matches any
	// [*MissingRequiredArgumentError] under errors.Is.
	ErrMissingRequiredArgument = errors.New("missing required argument")
)

// Unbounded is the [ArityError.Max] of a command with a Rest parameter.
const Unbounded = -1

// ArityError reports an argument count outside what the command's
// parameters accept, or arguments left unbound after binding.
type ArityError struct {
	// Provided is the number of arguments counted against the bounds.
	Provided int
	// Min is the number of Required parameters.
	Min int
	// Max is Required plus Optional, or [Unbounded].
	Max int
	// Leftover describes arguments no parameter consumed, in the form
	// they were given ("value", "--name=value", "--flag").
	Leftover []string
}

func (e *ArityError) Error() string {
	if len(e.Leftover) > 0 {
		return fmt.Sprintf("wrong number of arguments: unexpected %s", strings.Join(e.Leftover, " "))
	}
	switch {
	case e.Max == Unbounded:
		return fmt.Sprintf("wrong number of arguments: got %d, want at least %d", e.Provided, e.Min)
	case e.Min == e.Max:
		return fmt.Sprintf("wrong number of arguments: got %d, want %d", e.Provided, e.Min)
	default:
		return fmt.Sprintf("wrong number of arguments: got %d, want %d to %d", e.Provided, e.Min, e.Max)
	}
}

// Is reports whether target is [ErrArity].
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// MissingRequiredArgumentError reports a Required parameter with no
// positional left to bind.
type MissingRequiredArgumentError struct {
	Name string
}

func (e *MissingRequiredArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Name)
}

// Is reports whether target is [ErrMissingRequiredArgument].
func (e *MissingRequiredArgumentError) Is(target error) bool {
	return target == ErrMissingRequiredArgument
}
