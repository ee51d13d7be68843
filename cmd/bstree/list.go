// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"

	"github.com/absolutelightning/go-bstree/linkedlist"
	"github.com/urfave/cli/v2"
)

var cmdList = &cli.Command{
	Name:      "list",
	Usage:     "build a linked list from the arguments and print it",
	ArgsUsage: "<value>...",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "remove-at",
			Usage: "remove the value at this position before printing",
			Value: -1,
		},
		&cli.StringFlag{
			Name:  "find",
			Usage: "print the position of this value",
		},
	},
	Action: func(cctx *cli.Context) error {
		l := linkedlist.New[string]()
		for _, v := range cctx.Args().Slice() {
			l.Append(v)
		}

		out := cctx.App.Writer
		if cctx.IsSet("remove-at") {
			v, err := l.RemoveAt(cctx.Int("remove-at"))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "removed %s\n", v)
		}
		if cctx.IsSet("find") {
			needle := cctx.String("find")
			if idx, ok := l.Find(needle); ok {
				fmt.Fprintf(out, "%s at %d\n", needle, idx)
			} else {
				fmt.Fprintf(out, "%s not found\n", needle)
			}
		}

		fmt.Fprintf(out, "size %d: %s\n", l.Len(), l)
		return nil
	},
}
