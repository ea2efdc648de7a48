// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCommandSpecified matches any [*NoCommandSpecifiedError] under
	// errors.Is.
	ErrNoCommandSpecified = errors.New("no command specified")

	// ErrInvalidCommand matches any [*InvalidCommandError] under
	// errors.Is.
	ErrInvalidCommand = errors.New("invalid command")
)

// NoCommandSpecifiedError reports that the tokens ran out while routing
// was still inside a namespace.
type NoCommandSpecifiedError struct {
	// Path is the namespace reached, empty for the root.
	Path []string
	// Available lists the namespace's children.
	Available []string
}

func (e *NoCommandSpecifiedError) Error() string {
	if len(e.Path) == 0 {
		return "no command specified"
	}
	return fmt.Sprintf("no command specified under %q", strings.Join(e.Path, " "))
}

// Is reports whether target is [ErrNoCommandSpecified].
func (e *NoCommandSpecifiedError) Is(target error) bool {
	return target == ErrNoCommandSpecified
}

// InvalidCommandError reports a token that names no child of the current
// namespace.
type InvalidCommandError struct {
	// Name is the token that failed to match.
	Name string
	// Path is the namespace it was looked up in, empty for the root.
	Path []string
	// Suggestion is the closest child name, or "".
	Suggestion string
}

func (e *InvalidCommandError) Error() string {
	message := fmt.Sprintf("unknown command %q", e.Name)
	if len(e.Path) > 0 {
		message += fmt.Sprintf(" under %q", strings.Join(e.Path, " "))
	}
	if e.Suggestion != "" {
		message += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return message
}

// Is reports whether target is [ErrInvalidCommand].
func (e *InvalidCommandError) Is(target error) bool {
	return target == ErrInvalidCommand
}
