// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import "golang.org/x/exp/constraints"

// ReverseIterator is used to iterate over the entries of a tree
// in reverse in-order
type ReverseIterator[K constraints.Ordered, V any] struct {
	root  *node[K, V]
	stack []*node[K, V]
}

// ReverseIterator returns an iterator positioned at the largest key.
func (t *Tree[K, V]) ReverseIterator() *ReverseIterator[K, V] {
	ri := &ReverseIterator[K, V]{root: t.root}
	ri.pushRight(t.root)
	return ri
}

func (ri *ReverseIterator[K, V]) pushRight(n *node[K, V]) {
	for ; n != nil; n = n.right {
		ri.stack = append(ri.stack, n)
	}
}

// SeekReverseLowerBound is used to seek the iterator to the largest key that is
// lower or equal to the given key.
func (ri *ReverseIterator[K, V]) SeekReverseLowerBound(key K) {
	ri.stack = ri.stack[:0]
	n := ri.root
	for n != nil {
		switch {
		case key > n.key:
			ri.stack = append(ri.stack, n)
			n = n.right
		case key < n.key:
			n = n.left
		default:
			ri.stack = append(ri.stack, n)
			return
		}
	}
}

// Previous returns the previous node in reverse order
func (ri *ReverseIterator[K, V]) Previous() (K, V, bool) {
	if len(ri.stack) == 0 {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := ri.stack[len(ri.stack)-1]
	ri.stack = ri.stack[:len(ri.stack)-1]
	ri.pushRight(n.left)
	return n.key, n.value, true
}
