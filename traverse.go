// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import "golang.org/x/exp/constraints"

// PreOrder returns the entries in node, left, right order.
func (t *Tree[K, V]) PreOrder() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.size)
	t.WalkPreOrder(collect(&out))
	return out
}

// InOrder returns the entries in ascending key order.
func (t *Tree[K, V]) InOrder() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.size)
	t.WalkInOrder(collect(&out))
	return out
}

// PostOrder returns the entries in left, right, node order.
func (t *Tree[K, V]) PostOrder() []Entry[K, V] {
	out := make([]Entry[K, V], 0, t.size)
	t.WalkPostOrder(collect(&out))
	return out
}

// LevelOrder returns the entries grouped by depth, root level first,
// each level ordered left to right.
func (t *Tree[K, V]) LevelOrder() [][]Entry[K, V] {
	var levels [][]Entry[K, V]
	if t.root == nil {
		return levels
	}
	queue := []*node[K, V]{t.root}
	for len(queue) > 0 {
		level := make([]Entry[K, V], 0, len(queue))
		next := make([]*node[K, V], 0, 2*len(queue))
		for _, n := range queue {
			level = append(level, n.entry())
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		levels = append(levels, level)
		queue = next
	}
	return levels
}

func collect[K constraints.Ordered, V any](out *[]Entry[K, V]) WalkFn[K, V] {
	return func(k K, v V) bool {
		*out = append(*out, Entry[K, V]{Key: k, Value: v})
		return false
	}
}

// WalkPreOrder calls fn for every entry in pre-order until fn returns true.
func (t *Tree[K, V]) WalkPreOrder(fn WalkFn[K, V]) {
	walkPreOrder(t.root, fn)
}

// WalkInOrder calls fn for every entry in ascending key order until fn
// returns true.
func (t *Tree[K, V]) WalkInOrder(fn WalkFn[K, V]) {
	walkInOrder(t.root, fn)
}

// WalkPostOrder calls fn for every entry in post-order until fn returns true.
func (t *Tree[K, V]) WalkPostOrder(fn WalkFn[K, V]) {
	walkPostOrder(t.root, fn)
}

// WalkLevelOrder calls fn for every entry breadth first, left to right
// within a level, until fn returns true.
func (t *Tree[K, V]) WalkLevelOrder(fn WalkFn[K, V]) {
	if t.root == nil {
		return
	}
	queue := []*node[K, V]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if fn(n.key, n.value) {
			return
		}
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}

// walkPreOrder is used to do a pre-order walk of a node
// recursively. Returns true if the walk should be aborted
func walkPreOrder[K constraints.Ordered, V any](n *node[K, V], fn WalkFn[K, V]) bool {
	if n == nil {
		return false
	}
	if fn(n.key, n.value) {
		return true
	}
	return walkPreOrder(n.left, fn) || walkPreOrder(n.right, fn)
}

func walkInOrder[K constraints.Ordered, V any](n *node[K, V], fn WalkFn[K, V]) bool {
	if n == nil {
		return false
	}
	if walkInOrder(n.left, fn) {
		return true
	}
	if fn(n.key, n.value) {
		return true
	}
	return walkInOrder(n.right, fn)
}

func walkPostOrder[K constraints.Ordered, V any](n *node[K, V], fn WalkFn[K, V]) bool {
	if n == nil {
		return false
	}
	if walkPostOrder(n.left, fn) || walkPostOrder(n.right, fn) {
		return true
	}
	return fn(n.key, n.value)
}
