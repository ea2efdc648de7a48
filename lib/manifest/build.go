// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dannypurcell/rubycom-sub000/lib/binding"
	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
	"github.com/dannypurcell/rubycom-sub000/lib/literal"
)

// Options adjusts how a document becomes a tree.
type Options struct {
	// Reserved names are skipped wherever they appear as a command name.
	Reserved []string
}

// Build converts document into a command tree and validates it.
func Build(document *Document, options Options) (commandtree.Node, error) {
	var root commandtree.Node
	var err error
	if document.Commands != nil || document.Params == nil {
		root, err = buildNamespace(nil, document.Commands, options)
	} else {
		root, err = buildLeaf(nil, document.Summary, document.Params)
	}
	if err != nil {
		return nil, err
	}

	if err := commandtree.Validate(root); err != nil {
		return nil, err
	}
	return root, nil
}

// Load reads the manifest at path and builds its tree.
func Load(path string, options Options) (commandtree.Node, error) {
	document, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := Build(document, options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func buildNamespace(path []string, commands []Command, options Options) (*commandtree.Namespace, error) {
	namespace := commandtree.NewNamespace()
	for _, command := range commands {
		if slices.Contains(options.Reserved, command.Name) {
			continue
		}

		childPath := append(slices.Clone(path), command.Name)
		var child commandtree.Node
		var err error
		if command.Commands != nil {
			child, err = buildNamespace(childPath, command.Commands, options)
		} else {
			child, err = buildLeaf(childPath, command.Summary, command.Params)
		}
		if err != nil {
			return nil, err
		}

		if err := namespace.Add(command.Name, child); err != nil {
			return nil, &commandtree.InvalidTreeError{Path: path, Err: err}
		}
	}
	return namespace, nil
}

func buildLeaf(path []string, summary string, params []Param) (*commandtree.Leaf, error) {
	specs := make([]binding.ParameterSpec, 0, len(params))
	for _, param := range params {
		spec, err := buildSpec(param)
		if err != nil {
			return nil, &commandtree.InvalidTreeError{Path: path, Err: err}
		}
		specs = append(specs, spec)
	}

	leaf := commandtree.NewLeaf(specs...)
	leaf.Summary = summary
	return leaf, nil
}

func buildSpec(param Param) (binding.ParameterSpec, error) {
	kind, err := binding.ParseKind(param.Kind)
	if err != nil {
		return binding.ParameterSpec{}, err
	}
	spec := binding.ParameterSpec{Name: param.Name, Kind: kind}

	switch {
	case param.Default != nil:
		if kind == binding.Required {
			return binding.ParameterSpec{}, fmt.Errorf("required parameter %q cannot have a default", param.Name)
		}
		value, err := decodeDefault(param.Default)
		if err != nil {
			return binding.ParameterSpec{}, fmt.Errorf("parameter %q default: %w", param.Name, err)
		}
		spec.Default = binding.DefaultOf(value)
	case kind == binding.Optional:
		spec.Default = binding.DefaultOf(literal.Nil())
	case kind == binding.Rest:
		spec.Default = binding.DefaultOf(literal.List())
	default:
		spec.Default = binding.NoDefault
	}
	return spec, nil
}

// decodeDefault turns a JSON scalar into a value. Strings go through
// the literal decoder; numbers are decoded from their JSON text.
func decodeDefault(raw json.RawMessage) (literal.Value, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case bytes.Equal(raw, []byte("null")):
		return literal.Nil(), nil
	case bytes.Equal(raw, []byte("true")):
		return literal.Bool(true), nil
	case bytes.Equal(raw, []byte("false")):
		return literal.Bool(false), nil
	case len(raw) > 0 && raw[0] == '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return literal.Value{}, err
		}
		return literal.Decode(text), nil
	case literal.IsNumeric(string(raw)):
		return literal.Decode(string(raw)), nil
	default:
		return literal.Value{}, fmt.Errorf("unsupported default %s", raw)
	}
}
