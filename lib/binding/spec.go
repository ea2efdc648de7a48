// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"fmt"

	"github.com/dannypurcell/rubycom-sub000/lib/literal"
)

// Kind says how a parameter is bound.
type Kind uint8

const (
	// Required parameters are bound from positionals only.
	Required Kind = iota
	// Optional parameters are bound by name, by position, or from their
	// default.
	Optional
	// Rest absorbs every argument left after the other parameters.
	Rest
)

func (k Kind) String() string {
	switch k {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Rest:
		return "rest"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind parses the lower-case kind names produced by [Kind.String].
func ParseKind(s string) (Kind, error) {
	switch s {
	case "required":
		return Required, nil
	case "optional":
		return Optional, nil
	case "rest":
		return Rest, nil
	}
	return 0, fmt.Errorf("unknown parameter kind %q (want required, optional, or rest)", s)
}

// Default is a parameter's default value, or [NoDefault]. It keeps
// "no default" apart from an explicit nil default.
type Default struct {
	value   literal.Value
	present bool
}

// NoDefault marks a parameter that has no default value.
var NoDefault = Default{}

// DefaultOf returns a default holding value.
func DefaultOf(value literal.Value) Default {
	return Default{value: value, present: true}
}

// Value returns the default value and whether one is present.
func (d Default) Value() (literal.Value, bool) {
	return d.value, d.present
}

func (d Default) String() string {
	if !d.present {
		return "<none>"
	}
	return d.value.String()
}

// ParameterSpec declares one parameter of a command.
type ParameterSpec struct {
	Name    string
	Kind    Kind
	Default Default
}

// ValidateSpecs checks the rules a parameter list must satisfy: names are
// non-empty and unique, at most one Rest parameter appears and only in
// last position, and only Required parameters lack a default.
func ValidateSpecs(specs []ParameterSpec) error {
	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return fmt.Errorf("parameter %d has no name", i)
		}
		if seen[spec.Name] {
			return fmt.Errorf("parameter %q declared more than once", spec.Name)
		}
		seen[spec.Name] = true

		switch spec.Kind {
		case Required:
		case Optional, Rest:
			if _, ok := spec.Default.Value(); !ok {
				return fmt.Errorf("%s parameter %q has no default", spec.Kind, spec.Name)
			}
		default:
			return fmt.Errorf("parameter %q has unknown kind %d", spec.Name, spec.Kind)
		}

		if spec.Kind == Rest && i != len(specs)-1 {
			return fmt.Errorf("rest parameter %q must be declared last", spec.Name)
		}
	}
	return nil
}
