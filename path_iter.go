// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import "golang.org/x/exp/constraints"

// PathIterator is used to iterate over the nodes visited when searching
// for a key, from the root down. The last entry returned is the key
// itself if it is present, otherwise the node under which it would be
// inserted.
type PathIterator[K constraints.Ordered, V any] struct {
	key  K
	node *node[K, V]
	done bool
}

// PathIterator returns an iterator over the search path for key.
func (t *Tree[K, V]) PathIterator(key K) *PathIterator[K, V] {
	return &PathIterator[K, V]{key: key, node: t.root}
}

func (i *PathIterator[K, V]) Next() (K, V, bool) {
	if i.node == nil || i.done {
		var (
			k K
			v V
		)
		return k, v, false
	}

	n := i.node
	switch {
	case i.key < n.key:
		i.node = n.left
	case i.key > n.key:
		i.node = n.right
	default:
		i.done = true
	}
	return n.key, n.value, true
}
