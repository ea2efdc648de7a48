// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commandtree

import (
	"fmt"
	"strings"

	"github.com/dannypurcell/rubycom-sub000/lib/binding"
)

// InvalidTreeError reports a node that breaks the tree's structural
// rules.
type InvalidTreeError struct {
	// Path is the command path of the offending node.
	Path []string
	// Err describes the problem.
	Err error
}

func (e *InvalidTreeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("invalid command tree at root: %v", e.Err)
	}
	return fmt.Sprintf("invalid command tree at %q: %v", strings.Join(e.Path, " "), e.Err)
}

func (e *InvalidTreeError) Unwrap() error { return e.Err }

// Validate checks every node under root: no node is nil, and each leaf's
// parameters pass [binding.ValidateSpecs]. Unique child names are
// enforced when children are added.
func Validate(root Node) error {
	return Walk(root, func(path []string, node Node) error {
		switch node := node.(type) {
		case *Namespace:
			if node == nil {
				return &InvalidTreeError{Path: path, Err: fmt.Errorf("nil namespace")}
			}
		case *Leaf:
			if node == nil {
				return &InvalidTreeError{Path: path, Err: fmt.Errorf("nil leaf")}
			}
			if err := binding.ValidateSpecs(node.Parameters); err != nil {
				return &InvalidTreeError{Path: path, Err: err}
			}
		default:
			return &InvalidTreeError{Path: path, Err: fmt.Errorf("nil node")}
		}
		return nil
	})
}
