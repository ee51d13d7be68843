// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import "golang.org/x/exp/constraints"

// Delete removes key from the tree and returns the value it held. If the
// key is absent the tree is left untouched and false is returned.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	slot := t.findSlot(key)
	if *slot == nil {
		var zero V
		return zero, false
	}
	old := (*slot).value
	deleteAt(slot)
	t.size--
	return old, true
}

// findSlot returns the child pointer (or the root pointer) that owns the
// node holding key. The pointed-to value is nil when the key is absent.
func (t *Tree[K, V]) findSlot(key K) **node[K, V] {
	slot := &t.root
	for *slot != nil {
		n := *slot
		switch {
		case key < n.key:
			slot = &n.left
		case key > n.key:
			slot = &n.right
		default:
			return slot
		}
	}
	return slot
}

// deleteAt unlinks the node owned by slot. A node with two children
// keeps its position and takes over the key and value of its in-order
// successor, which is then spliced out of its own slot.
func deleteAt[K constraints.Ordered, V any](slot **node[K, V]) {
	n := *slot
	if n.left == nil || n.right == nil {
		*slot = onlyChild(n)
		return
	}

	succSlot := &n.right
	for (*succSlot).left != nil {
		succSlot = &(*succSlot).left
	}
	succ := *succSlot
	n.key, n.value = succ.key, succ.value

	// The successor has no left child.
	*succSlot = succ.right
}

func onlyChild[K constraints.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n.left != nil {
		return n.left
	}
	return n.right
}
