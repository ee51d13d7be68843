// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import "golang.org/x/exp/constraints"

// Iterator is used to iterate over the entries of a tree in ascending
// key order. It must not be used after the tree is mutated.
type Iterator[K constraints.Ordered, V any] struct {
	root *node[K, V]

	// stack holds the nodes still to be emitted; the top is always the
	// next entry in order.
	stack []*node[K, V]
}

// Iterator returns an iterator positioned at the smallest key.
func (t *Tree[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{root: t.root}
	it.pushLeft(t.root)
	return it
}

func (i *Iterator[K, V]) pushLeft(n *node[K, V]) {
	for ; n != nil; n = n.left {
		i.stack = append(i.stack, n)
	}
}

// Next returns the next entry in ascending order, or false once the
// iterator is exhausted.
func (i *Iterator[K, V]) Next() (K, V, bool) {
	if len(i.stack) == 0 {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(n.right)
	return n.key, n.value, true
}

// SeekLowerBound is used to seek the iterator to the smallest key that is
// greater or equal to the given key.
func (i *Iterator[K, V]) SeekLowerBound(key K) {
	i.stack = i.stack[:0]
	n := i.root
	for n != nil {
		switch {
		case key < n.key:
			i.stack = append(i.stack, n)
			n = n.left
		case key > n.key:
			n = n.right
		default:
			i.stack = append(i.stack, n)
			return
		}
	}
}
