// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package completion suggests the next command name for shell tab
// completion, walking the same tree the router uses.
package completion

import (
	"iter"
	"slices"
	"strings"

	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
)

// Complete returns the names that could follow partial.
//
// With no tokens it lists the root's children. The last token is matched
// as a case-sensitive prefix against the children of the namespace the
// earlier tokens lead to; each earlier token must name a child exactly,
// or there is nothing to suggest. When the last token is itself the only
// match, completion moves into that child and lists its children.
//
// Leaves have nothing to complete. A result consisting only of the
// already-typed last token is reported as empty.
func Complete(root commandtree.Node, partial []string) []string {
	matches := complete(root, partial)
	if len(matches) == 0 {
		return nil
	}
	if len(partial) > 0 && len(matches) == 1 && matches[0] == partial[len(partial)-1] {
		return nil
	}
	return matches
}

// Suggestions is Complete as a sequence. The matches are computed before
// the first value is yielded.
func Suggestions(root commandtree.Node, partial []string) iter.Seq[string] {
	return slices.Values(Complete(root, partial))
}

func complete(node commandtree.Node, partial []string) []string {
	namespace, ok := node.(*commandtree.Namespace)
	if !ok || namespace == nil {
		return nil
	}

	switch len(partial) {
	case 0:
		return namespace.Names()

	case 1:
		prefix := partial[0]
		var matches []string
		for _, name := range namespace.Names() {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
		if len(matches) == 1 && matches[0] == prefix {
			child, _ := namespace.Child(prefix)
			return complete(child, nil)
		}
		return matches

	default:
		child, ok := namespace.Child(partial[0])
		if !ok {
			return nil
		}
		return complete(child, partial[1:])
	}
}
