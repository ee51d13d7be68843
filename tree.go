// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree keyed by an ordered scalar.
// New builds it height-balanced; later inserts do not rebalance, see
// IsBalanced and Rebalance. A Tree is not safe for concurrent use.
type Tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// WalkFn is used when walking the tree. Takes a
// key and value, returning if iteration should
// be terminated.
type WalkFn[K constraints.Ordered, V any] func(k K, v V) bool

// New builds a height-balanced tree from entries. Entries are sorted
// by key with a stable sort and, for duplicate keys, only the first
// entry in that order is kept. The input slice is not modified.
func New[K constraints.Ordered, V any](entries []Entry[K, V]) *Tree[K, V] {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry[K, V]) int {
		return compare(a.Key, b.Key)
	})
	sorted = slices.CompactFunc(sorted, func(a, b Entry[K, V]) bool {
		return a.Key == b.Key
	})

	t := &Tree[K, V]{}
	t.build(sorted)
	return t
}

// build replaces the whole node graph with a balanced tree over sorted,
// which must be strictly ascending by key.
func (t *Tree[K, V]) build(sorted []Entry[K, V]) {
	t.root = buildRange(sorted, 0, len(sorted)-1)
	t.size = len(sorted)
}

// buildRange roots each span at its upper midpoint.
func buildRange[K constraints.Ordered, V any](sorted []Entry[K, V], start, end int) *node[K, V] {
	if start > end {
		return nil
	}
	mid := (start + end + 1) / 2
	return &node[K, V]{
		key:   sorted[mid].Key,
		value: sorted[mid].Value,
		left:  buildRange(sorted, start, mid-1),
		right: buildRange(sorted, mid+1, end),
	}
}

func compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Len is used to return the number of elements in the tree
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Get is used to look up a specific key, returning
// the value and if it was found
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Insert adds a key/value pair. If the key is already present its value
// is overwritten in place and the previous value is returned with true.
// Insert never rebalances.
func (t *Tree[K, V]) Insert(key K, value V) (V, bool) {
	var zero V
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size = 1
		return zero, false
	}

	n := t.root
	for {
		switch {
		case key < n.key:
			if n.left == nil {
				n.left = &node[K, V]{key: key, value: value}
				t.size++
				return zero, false
			}
			n = n.left
		case key > n.key:
			if n.right == nil {
				n.right = &node[K, V]{key: key, value: value}
				t.size++
				return zero, false
			}
			n = n.right
		default:
			old := n.value
			n.value = value
			return old, true
		}
	}
}

// Minimum returns the smallest key in the tree.
func (t *Tree[K, V]) Minimum() (K, V, bool) {
	n := minimum(t.root)
	if n == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return n.key, n.value, true
}

// Maximum returns the largest key in the tree.
func (t *Tree[K, V]) Maximum() (K, V, bool) {
	n := maximum(t.root)
	if n == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return n.key, n.value, true
}

// Clone returns a deep copy of the tree. Mutating either tree afterwards
// does not affect the other; values themselves are copied by assignment.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root: t.root.clone(),
		size: t.size,
	}
}
