// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Fprint writes a sideways drawing of the tree to w, one key per line,
// with the right subtree above its parent and the left subtree below.
// The layout is meant for humans and may change.
func (t *Tree[K, V]) Fprint(w io.Writer) error {
	return fprintNode(w, t.root, "", true)
}

// String renders the tree the same way as Fprint.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	_ = t.Fprint(&sb)
	return sb.String()
}

func fprintNode[K constraints.Ordered, V any](w io.Writer, n *node[K, V], prefix string, isLeft bool) error {
	if n == nil {
		return nil
	}
	if n.right != nil {
		if err := fprintNode(w, n.right, prefix+pick(isLeft, "│   ", "    "), false); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, pick(isLeft, "└── ", "┌── "), n.key); err != nil {
		return err
	}
	if n.left != nil {
		return fprintNode(w, n.left, prefix+pick(isLeft, "    ", "│   "), true)
	}
	return nil
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
