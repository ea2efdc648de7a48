// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commandtree

import (
	"fmt"
	"slices"

	"github.com/dannypurcell/rubycom-sub000/lib/binding"
)

// Node is a *Namespace or a *Leaf.
type Node interface {
	node()
}

// Namespace groups child commands and namespaces by name.
type Namespace struct {
	names    []string
	children map[string]Node
}

// Leaf is an invocable command.
type Leaf struct {
	// Summary is a one-line description carried through for help and
	// listing output. Routing and binding ignore it.
	Summary string

	// Parameters are the declared parameters in order.
	Parameters []binding.ParameterSpec
}

func (*Namespace) node() {}
func (*Leaf) node()      {}

// NewNamespace returns an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{children: make(map[string]Node)}
}

// NewLeaf returns a leaf with the given parameters.
func NewLeaf(parameters ...binding.ParameterSpec) *Leaf {
	return &Leaf{Parameters: slices.Clone(parameters)}
}

// Add appends a named child. Names must be non-empty and unique within
// the namespace.
func (n *Namespace) Add(name string, child Node) error {
	if name == "" {
		return fmt.Errorf("child name is empty")
	}
	if child == nil {
		return fmt.Errorf("child %q is nil", name)
	}
	if n.children == nil {
		n.children = make(map[string]Node)
	}
	if _, exists := n.children[name]; exists {
		return fmt.Errorf("child %q already exists", name)
	}
	n.names = append(n.names, name)
	n.children[name] = child
	return nil
}

// MustAdd is Add for trees built in code, where a duplicate name is a
// programming error. It panics on error and returns n for chaining.
func (n *Namespace) MustAdd(name string, child Node) *Namespace {
	if err := n.Add(name, child); err != nil {
		panic("commandtree: " + err.Error())
	}
	return n
}

// Child returns the child registered under exactly name.
func (n *Namespace) Child(name string) (Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Names returns the child names in declaration order.
func (n *Namespace) Names() []string {
	return slices.Clone(n.names)
}

// Len returns the number of children.
func (n *Namespace) Len() int {
	return len(n.names)
}
