// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/absolutelightning/go-bstree"
	"github.com/urfave/cli/v2"
)

const defaultKeys = "1,7,4,23,8,9,4,3,5,7,9,67,6345,324"

var cmdTree = &cli.Command{
	Name:  "tree",
	Usage: "build a tree, apply edits and print it",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "keys",
			Usage:   "comma-separated integer keys to build from; each value is key*100",
			Value:   defaultKeys,
			EnvVars: []string{"BSTREE_KEYS"},
		},
		&cli.StringSliceFlag{
			Name:  "insert",
			Usage: "key to insert after building (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:  "delete",
			Usage: "key to delete after inserting (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "rebalance",
			Usage: "rebalance after all edits",
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "also print a traversal: pre, in, post or level",
		},
	},
	Action: runTree,
}

func runTree(cctx *cli.Context) error {
	keys, err := parseInts(cctx.String("keys"))
	if err != nil {
		return fmt.Errorf("parsing --keys: %w", err)
	}
	entries := make([]bstree.Entry[int, int], 0, len(keys))
	for _, k := range keys {
		entries = append(entries, bstree.Entry[int, int]{Key: k, Value: k * 100})
	}
	tree := bstree.New(entries)
	slog.Debug("built tree", "input", len(keys), "size", tree.Len(), "height", tree.Height())

	inserts, err := parseInts(strings.Join(cctx.StringSlice("insert"), ","))
	if err != nil {
		return fmt.Errorf("parsing --insert: %w", err)
	}
	for _, k := range inserts {
		_, updated := tree.Insert(k, k*100)
		slog.Debug("insert", "key", k, "updated", updated)
	}

	deletes, err := parseInts(strings.Join(cctx.StringSlice("delete"), ","))
	if err != nil {
		return fmt.Errorf("parsing --delete: %w", err)
	}
	out := cctx.App.Writer
	for _, k := range deletes {
		v, found := tree.Delete(k)
		if !found {
			fmt.Fprintf(out, "delete %d: not found\n", k)
			continue
		}
		fmt.Fprintf(out, "delete %d: %d\n", k, v)
	}

	if cctx.Bool("rebalance") {
		tree.Rebalance()
		slog.Debug("rebalanced", "height", tree.Height())
	}

	if err := tree.Fprint(out); err != nil {
		return err
	}
	fmt.Fprintf(out, "size=%d height=%d balanced=%t\n", tree.Len(), tree.Height(), tree.IsBalanced())

	if order := cctx.String("order"); order != "" {
		line, err := formatOrder(tree, order)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func formatOrder(tree *bstree.Tree[int, int], order string) (string, error) {
	var keys []string
	add := func(k, _ int) bool {
		keys = append(keys, strconv.Itoa(k))
		return false
	}
	switch order {
	case "pre":
		tree.WalkPreOrder(add)
	case "in":
		tree.WalkInOrder(add)
	case "post":
		tree.WalkPostOrder(add)
	case "level":
		var levels []string
		for _, level := range tree.LevelOrder() {
			keys = keys[:0]
			for _, e := range level {
				add(e.Key, e.Value)
			}
			levels = append(levels, strings.Join(keys, " "))
		}
		return order + ": " + strings.Join(levels, " | "), nil
	default:
		return "", fmt.Errorf("unknown order %q", order)
	}
	return order + ": " + strings.Join(keys, " "), nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
