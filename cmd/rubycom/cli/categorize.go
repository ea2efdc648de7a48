// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"strings"

	"github.com/dannypurcell/rubycom-sub000/lib/argv"
	"github.com/dannypurcell/rubycom-sub000/lib/binding"
	"github.com/dannypurcell/rubycom-sub000/lib/router"
)

// Categorize wraps an error from the resolution engine in a [ToolError]
// with the matching category. Errors that already carry a category and
// nil are returned unchanged; anything unrecognized is internal.
func Categorize(err error) error {
	if err == nil {
		return nil
	}

	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return err
	}

	var noCommand *router.NoCommandSpecifiedError
	if errors.As(err, &noCommand) {
		categorized := &ToolError{Category: CategoryNotFound, Err: err}
		if len(noCommand.Available) > 0 {
			categorized.WithHint("Available commands: " + strings.Join(noCommand.Available, ", "))
		}
		return categorized
	}

	switch {
	case errors.Is(err, argv.ErrMalformedOption),
		errors.Is(err, binding.ErrArity),
		errors.Is(err, binding.ErrMissingRequiredArgument):
		return &ToolError{Category: CategoryValidation, Err: err}
	case errors.Is(err, router.ErrInvalidCommand):
		return (&ToolError{Category: CategoryNotFound, Err: err}).
			WithHint("Run 'rubycom tree' to list the available commands.")
	default:
		return &ToolError{Category: CategoryInternal, Err: err}
	}
}
