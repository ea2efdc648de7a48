// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commandtree

import "slices"

// WalkFunc is called for each node with the names leading to it from the
// root. The path slice is owned by the caller of WalkFunc; clone it to
// keep it. Returning an error stops the walk.
type WalkFunc func(path []string, node Node) error

// Walk visits root and its descendants depth-first, parents before
// children, children in declaration order.
func Walk(root Node, visit WalkFunc) error {
	return walk(nil, root, visit)
}

func walk(path []string, node Node, visit WalkFunc) error {
	if err := visit(slices.Clip(path), node); err != nil {
		return err
	}
	namespace, ok := node.(*Namespace)
	if !ok || namespace == nil {
		return nil
	}
	for _, name := range namespace.names {
		if err := walk(append(path, name), namespace.children[name], visit); err != nil {
			return err
		}
	}
	return nil
}

// Leaves returns the path of every leaf under root in walk order.
func Leaves(root Node) [][]string {
	var leaves [][]string
	_ = Walk(root, func(path []string, node Node) error {
		if _, ok := node.(*Leaf); ok {
			leaves = append(leaves, slices.Clone(path))
		}
		return nil
	})
	return leaves
}
