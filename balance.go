// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import "golang.org/x/exp/constraints"

// unbalanced is returned by checkedHeight once any node violates the
// balance rule.
const unbalanced = -1

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0 and a single node has height 1.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K constraints.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Depth returns the number of edges between the root and the node
// holding key.
func (t *Tree[K, V]) Depth(key K) (int, bool) {
	depth := 0
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return depth, true
		}
		depth++
	}
	return 0, false
}

// IsBalanced reports whether the heights of the two subtrees of every
// node differ by at most one.
func (t *Tree[K, V]) IsBalanced() bool {
	return checkedHeight(t.root) != unbalanced
}

// checkedHeight computes height bottom-up and bails out with unbalanced
// as soon as a subtree fails the check.
func checkedHeight[K constraints.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	lh := checkedHeight(n.left)
	if lh == unbalanced {
		return unbalanced
	}
	rh := checkedHeight(n.right)
	if rh == unbalanced {
		return unbalanced
	}
	if lh-rh > 1 || rh-lh > 1 {
		return unbalanced
	}
	return 1 + max(lh, rh)
}

// Rebalance rebuilds the tree from an in-order snapshot if it is not
// already balanced. The old nodes are discarded.
func (t *Tree[K, V]) Rebalance() {
	if t.IsBalanced() {
		return
	}
	t.build(t.InOrder())
}
