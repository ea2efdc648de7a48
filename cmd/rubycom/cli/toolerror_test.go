// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dannypurcell/rubycom-sub000/lib/argv"
	"github.com/dannypurcell/rubycom-sub000/lib/binding"
	"github.com/dannypurcell/rubycom-sub000/lib/router"
)

func TestToolError_ErrorWithoutHint(t *testing.T) {
	err := Validation("missing required argument %q", "env")
	if err.Error() != `missing required argument "env"` {
		t.Errorf("Error() = %q, want %q", err.Error(), `missing required argument "env"`)
	}
}

func TestToolError_ErrorWithHint(t *testing.T) {
	err := NotFound("unknown command %q", "Deplyo").
		WithHint("Run 'rubycom tree' to list the available commands.")

	want := "unknown command \"Deplyo\"\n\nRun 'rubycom tree' to list the available commands."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestToolError_WithHintReturnsReceiver(t *testing.T) {
	original := Validation("bad input")
	chained := original.WithHint("fix it")
	if original != chained {
		t.Error("WithHint should return the same pointer")
	}
}

func TestToolError_SurvivesErrorsAs(t *testing.T) {
	inner := Internal("reading manifest").WithHint("check the path")
	wrapped := fmt.Errorf("tree failed: %w", inner)

	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) {
		t.Fatal("errors.As should find ToolError in wrapped chain")
	}
	if toolErr.Category != CategoryInternal {
		t.Errorf("Category = %q, want %q", toolErr.Category, CategoryInternal)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"malformed option", &argv.MalformedOptionError{Token: "-", Reason: "no name"}, CategoryValidation},
		{"arity", &binding.ArityError{Provided: 3, Min: 1, Max: 1}, CategoryValidation},
		{"missing required", &binding.MissingRequiredArgumentError{Name: "env"}, CategoryValidation},
		{"invalid command", &router.InvalidCommandError{Name: "Deplyo"}, CategoryNotFound},
		{"no command", &router.NoCommandSpecifiedError{}, CategoryNotFound},
		{"wrapped", fmt.Errorf("resolving: %w", &binding.ArityError{Provided: 0, Min: 1, Max: 1}), CategoryValidation},
		{"other", errors.New("disk on fire"), CategoryInternal},
		{"already categorized", NotFound("gone"), CategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Categorize(tt.err)
			var toolErr *ToolError
			if !errors.As(err, &toolErr) {
				t.Fatalf("Categorize() = %T, want *ToolError", err)
			}
			if toolErr.Category != tt.want {
				t.Errorf("Category = %q, want %q", toolErr.Category, tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Errorf("Categorize() lost the original error chain")
			}
		})
	}

	if Categorize(nil) != nil {
		t.Error("Categorize(nil) should be nil")
	}
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{Validation("bad"), 2},
		{NotFound("gone"), 2},
		{Internal("broken"), 1},
		{errors.New("plain"), 1},
		{fmt.Errorf("wrapped: %w", Validation("bad")), 2},
	}
	for _, tt := range tests {
		if got := ExitStatus(tt.err); got != tt.want {
			t.Errorf("ExitStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
