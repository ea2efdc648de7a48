// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package binding

import (
	"unicode/utf8"

	"github.com/dannypurcell/rubycom-sub000/lib/argv"
	"github.com/dannypurcell/rubycom-sub000/lib/literal"
)

// Result maps parameter names to bound values in declaration order.
type Result struct {
	values argv.Bucket[literal.Value]
}

// Get returns the value bound to name.
func (r *Result) Get(name string) (literal.Value, bool) {
	return r.values.Get(name)
}

// Names returns the bound parameter names in declaration order.
func (r *Result) Names() []string {
	return r.values.Names()
}

// Len returns the number of bound parameters.
func (r *Result) Len() int {
	return r.values.Len()
}

// Map returns the binding as a plain map.
func (r *Result) Map() map[string]literal.Value {
	out := make(map[string]literal.Value, r.values.Len())
	for _, name := range r.values.Names() {
		out[name], _ = r.values.Get(name)
	}
	return out
}

// Bind assigns args to specs. args is not modified. The result holds one
// entry per spec, except that an Optional or Rest parameter declared with
// [NoDefault] is left out when nothing was supplied for it.
//
// Bind fails with [*ArityError] or [*MissingRequiredArgumentError].
func Bind(specs []ParameterSpec, args *argv.Classified) (*Result, error) {
	shorts := shortNames(specs)

	provided := countProvided(specs, args, shorts)
	minimum, maximum := countKind(specs, Required), upperBound(specs)
	if provided < minimum || (maximum != Unbounded && provided > maximum) {
		return nil, &ArityError{Provided: provided, Min: minimum, Max: maximum}
	}

	work := args.Clone()
	result := &Result{}

	for _, spec := range specs {
		switch spec.Kind {
		case Required:
			if len(work.Positionals) == 0 {
				return nil, &MissingRequiredArgumentError{Name: spec.Name}
			}
			result.values.Set(spec.Name, work.Positionals[0])
			work.Positionals = work.Positionals[1:]

		case Optional:
			if value, ok := takeNamed(work, spec.Name, shorts[spec.Name]); ok {
				result.values.Set(spec.Name, value)
			} else if len(work.Positionals) > 0 {
				result.values.Set(spec.Name, work.Positionals[0])
				work.Positionals = work.Positionals[1:]
			} else if value, ok := spec.Default.Value(); ok {
				result.values.Set(spec.Name, value)
			}

		case Rest:
			if value, ok := takeRest(work, spec.Default); ok {
				result.values.Set(spec.Name, value)
			}
		}
	}

	if work.Count() > 0 {
		return nil, &ArityError{
			Provided: provided,
			Min:      minimum,
			Max:      maximum,
			Leftover: describe(work),
		}
	}

	return result, nil
}

// countProvided is the argument count checked against the bounds implied
// by the parameter kinds. Options and flags addressed to an Optional
// parameter are not counted; every other option, flag, and positional is.
func countProvided(specs []ParameterSpec, args *argv.Classified, shorts map[string]string) int {
	addressed := make(map[string]bool)
	for _, spec := range specs {
		if spec.Kind != Optional {
			continue
		}
		addressed[spec.Name] = true
		if short := shorts[spec.Name]; short != "" {
			addressed[short] = true
		}
	}

	provided := len(args.Positionals)
	for _, name := range args.Options.Names() {
		if !addressed[name] {
			provided++
		}
	}
	for _, name := range args.Flags.Names() {
		if !addressed[name] {
			provided++
		}
	}

	return provided
}

// shortNames maps each parameter name to its one-character short form,
// or to "" when another parameter starts with the same character.
func shortNames(specs []ParameterSpec) map[string]string {
	counts := make(map[string]int, len(specs))
	firsts := make(map[string]string, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(spec.Name)
		first := spec.Name[:size]
		firsts[spec.Name] = first
		counts[first]++
	}

	shorts := make(map[string]string, len(specs))
	for name, first := range firsts {
		if counts[first] == 1 {
			shorts[name] = first
		}
	}
	return shorts
}

// takeNamed removes and returns the option or flag addressed to a
// parameter. Options win over flags, and the full name over the short.
func takeNamed(work *argv.Classified, name, short string) (literal.Value, bool) {
	candidates := []string{name}
	if short != "" && short != name {
		candidates = append(candidates, short)
	}
	for _, candidate := range candidates {
		if value, ok := work.Options.Take(candidate); ok {
			return value, true
		}
	}
	for _, candidate := range candidates {
		if value, ok := work.Flags.Take(candidate); ok {
			return literal.Bool(value), true
		}
	}
	return literal.Value{}, false
}

// takeRest empties every bucket into one list: positionals first, then a
// map of the remaining options and flags. With nothing left it falls back
// to the default, reporting false when there is none.
func takeRest(work *argv.Classified, fallback Default) (literal.Value, bool) {
	if work.Count() == 0 {
		return fallback.Value()
	}

	items := work.Positionals
	work.Positionals = nil

	if work.Options.Len()+work.Flags.Len() > 0 {
		var named argv.Bucket[literal.Value]
		for _, name := range work.Options.Names() {
			value, _ := work.Options.Take(name)
			named.Set(name, value)
		}
		for _, name := range work.Flags.Names() {
			flag, _ := work.Flags.Take(name)
			if existing, ok := named.Get(name); ok {
				named.Set(name, literal.Merge(existing, literal.Bool(flag)))
				continue
			}
			named.Set(name, literal.Bool(flag))
		}

		entries := make([]literal.Entry, 0, named.Len())
		for _, name := range named.Names() {
			value, _ := named.Get(name)
			entries = append(entries, literal.Entry{Key: name, Value: value})
		}
		items = append(items, literal.Map(entries...))
	}

	return literal.List(items...), true
}

func countKind(specs []ParameterSpec, kind Kind) int {
	count := 0
	for _, spec := range specs {
		if spec.Kind == kind {
			count++
		}
	}
	return count
}

func upperBound(specs []ParameterSpec) int {
	if countKind(specs, Rest) > 0 {
		return Unbounded
	}
	return countKind(specs, Required) + countKind(specs, Optional)
}

// describe renders unconsumed arguments the way they could be typed.
func describe(work *argv.Classified) []string {
	var leftover []string
	for _, value := range work.Positionals {
		leftover = append(leftover, value.String())
	}
	for _, name := range work.Options.Names() {
		value, _ := work.Options.Get(name)
		leftover = append(leftover, "--"+name+"="+value.String())
	}
	for _, name := range work.Flags.Names() {
		if flag, _ := work.Flags.Get(name); flag {
			leftover = append(leftover, "--"+name)
		} else {
			leftover = append(leftover, "--no-"+name)
		}
	}
	return leftover
}
