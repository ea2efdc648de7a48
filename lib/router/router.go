// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"fmt"
	"slices"

	"github.com/dannypurcell/rubycom-sub000/lib/argv"
	"github.com/dannypurcell/rubycom-sub000/lib/binding"
	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
)

// Route is the outcome of walking the tree to a leaf.
type Route struct {
	// Path holds the tokens consumed as namespace and command names.
	Path []string
	// Leaf is the command reached.
	Leaf *commandtree.Leaf
	// Remaining holds the tokens after the command name.
	Remaining []string
}

// Resolution is a routed and bound command.
type Resolution struct {
	// Path is the command's name path from the root.
	Path []string
	// Leaf is the resolved command, including its parameter specs.
	Leaf *commandtree.Leaf
	// Arguments is the classification of the tokens after the path.
	Arguments *argv.Classified
	// Binding maps parameter names to values.
	Binding *binding.Result
}

// Walk consumes leading tokens as names until it reaches a leaf. A root
// that is itself a leaf consumes nothing. tokens is not modified.
func Walk(root commandtree.Node, tokens []string) (*Route, error) {
	current := root
	remaining := tokens
	path := []string{}

	for {
		switch node := current.(type) {
		case *commandtree.Leaf:
			if node == nil {
				return nil, fmt.Errorf("router: nil leaf at %q", path)
			}
			return &Route{Path: path, Leaf: node, Remaining: slices.Clone(remaining)}, nil

		case *commandtree.Namespace:
			if node == nil {
				return nil, fmt.Errorf("router: nil namespace at %q", path)
			}
			if len(remaining) == 0 {
				return nil, &NoCommandSpecifiedError{Path: path, Available: node.Names()}
			}
			name := remaining[0]
			child, ok := node.Child(name)
			if !ok {
				return nil, &InvalidCommandError{
					Name:       name,
					Path:       path,
					Suggestion: Suggest(name, node.Names()),
				}
			}
			path = append(path, name)
			current = child
			remaining = remaining[1:]

		default:
			return nil, fmt.Errorf("router: unsupported node %T at %q", current, path)
		}
	}
}

// Resolve walks tokens to a leaf, classifies the rest, and binds them to
// the leaf's parameters. Errors from classification and binding are
// returned as-is.
func Resolve(root commandtree.Node, tokens []string) (*Resolution, error) {
	route, err := Walk(root, tokens)
	if err != nil {
		return nil, err
	}

	arguments, err := argv.Classify(route.Remaining)
	if err != nil {
		return nil, err
	}

	result, err := binding.Bind(route.Leaf.Parameters, arguments)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Path:      route.Path,
		Leaf:      route.Leaf,
		Arguments: arguments,
		Binding:   result,
	}, nil
}
