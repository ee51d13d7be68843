// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"log/slog"

	"github.com/absolutelightning/go-bstree/knights"
	"github.com/urfave/cli/v2"
)

var cmdKnights = &cli.Command{
	Name:      "knights",
	Usage:     "shortest knight path between two squares",
	ArgsUsage: `<row,col> <row,col>`,
	Action: func(cctx *cli.Context) error {
		args := cctx.Args()
		if args.Len() != 2 {
			return fmt.Errorf("expected start and finish squares, got %d args", args.Len())
		}
		start, err := parseSquare(args.Get(0))
		if err != nil {
			return err
		}
		finish, err := parseSquare(args.Get(1))
		if err != nil {
			return err
		}

		path, err := knights.Moves(start, finish)
		if err != nil {
			return err
		}
		slog.Debug("knight path", "start", start, "finish", finish, "squares", len(path))

		out := cctx.App.Writer
		moves := len(path) - 1
		plural := "s"
		if moves == 1 {
			plural = ""
		}
		fmt.Fprintf(out, "You made it in %d move%s! Here is your path:\n", moves, plural)
		fmt.Fprintln(out, knights.FormatPath(path))
		return nil
	},
}

func parseSquare(s string) (knights.Square, error) {
	coords, err := parseInts(s)
	if err != nil {
		return knights.Square{}, fmt.Errorf("parsing square %q: %w", s, err)
	}
	if len(coords) != 2 {
		return knights.Square{}, fmt.Errorf("parsing square %q: want row,col", s)
	}
	return knights.Square{Row: coords[0], Col: coords[1]}, nil
}
