// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package argv

import (
	"maps"
	"slices"
)

// Bucket is a name-keyed collection that remembers the order in which
// names were first added.
type Bucket[T any] struct {
	order   []string
	entries map[string]T
}

// Set stores value under name. A new name goes to the end of the order;
// an existing name keeps its position.
func (b *Bucket[T]) Set(name string, value T) {
	if b.entries == nil {
		b.entries = make(map[string]T)
	}
	if _, exists := b.entries[name]; !exists {
		b.order = append(b.order, name)
	}
	b.entries[name] = value
}

// Get returns the value stored under name.
func (b *Bucket[T]) Get(name string) (T, bool) {
	value, ok := b.entries[name]
	return value, ok
}

// Has reports whether name is present.
func (b *Bucket[T]) Has(name string) bool {
	_, ok := b.entries[name]
	return ok
}

// Take removes name and returns its value.
func (b *Bucket[T]) Take(name string) (T, bool) {
	value, ok := b.entries[name]
	if !ok {
		return value, false
	}
	delete(b.entries, name)
	for i, existing := range b.order {
		if existing == name {
			b.order = append(b.order[:i:i], b.order[i+1:]...)
			break
		}
	}
	return value, true
}

// Names returns the names in first-added order.
func (b *Bucket[T]) Names() []string {
	return slices.Clone(b.order)
}

// Len returns the number of names present.
func (b *Bucket[T]) Len() int { return len(b.order) }

// Clone returns an independent copy of b.
func (b *Bucket[T]) Clone() Bucket[T] {
	return Bucket[T]{order: slices.Clone(b.order), entries: maps.Clone(b.entries)}
}
