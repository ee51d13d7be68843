// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import "golang.org/x/exp/constraints"

// Entry is a single key/value pair. It is the input unit of New and the
// output unit of the collecting traversals.
type Entry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

type node[K constraints.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

func (n *node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}

// clone makes a deep copy of the subtree rooted at n.
func (n *node[K, V]) clone() *node[K, V] {
	if n == nil {
		return nil
	}
	return &node[K, V]{
		key:   n.key,
		value: n.value,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

func minimum[K constraints.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum[K constraints.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
