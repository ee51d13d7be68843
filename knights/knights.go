// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package knights finds the shortest sequence of knight moves between two
// squares of a standard 8x8 chess board.
package knights

import (
	"errors"
	"fmt"
	"strings"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

var (
	// ErrOffBoard is returned for squares outside the board.
	ErrOffBoard = errors.New("knights: square is off the board")

	// ErrNoPath is returned when finish cannot be reached from start.
	ErrNoPath = errors.New("knights: no path")
)

// Square is a board position; both coordinates are in [0, BoardSize).
type Square struct {
	Row int
	Col int
}

func (s Square) String() string {
	return fmt.Sprintf("[%d, %d]", s.Row, s.Col)
}

func (s Square) onBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

var knightMoves = [...]Square{
	{-1, 2}, {-1, -2}, {1, 2}, {1, -2},
	{2, -1}, {2, 1}, {-2, -1}, {-2, 1},
}

// Moves returns a shortest path from start to finish, both ends
// included. A knight can reach every square, so the path is never empty
// for valid input.
func Moves(start, finish Square) ([]Square, error) {
	if !start.onBoard() {
		return nil, fmt.Errorf("start %s: %w", start, ErrOffBoard)
	}
	if !finish.onBoard() {
		return nil, fmt.Errorf("finish %s: %w", finish, ErrOffBoard)
	}
	return shortestPath(start, finish, knightMoves[:])
}

// shortestPath runs a breadth-first search over the board using the
// given move offsets.
func shortestPath(start, finish Square, moves []Square) ([]Square, error) {
	var (
		visited [BoardSize][BoardSize]bool
		parent  [BoardSize][BoardSize]Square
	)
	visited[start.Row][start.Col] = true
	queue := []Square{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == finish {
			return pathTo(&parent, start, finish), nil
		}
		for _, m := range moves {
			next := Square{Row: cur.Row + m.Row, Col: cur.Col + m.Col}
			if !next.onBoard() || visited[next.Row][next.Col] {
				continue
			}
			visited[next.Row][next.Col] = true
			parent[next.Row][next.Col] = cur
			queue = append(queue, next)
		}
	}
	return nil, fmt.Errorf("from %s to %s: %w", start, finish, ErrNoPath)
}

func pathTo(parent *[BoardSize][BoardSize]Square, start, finish Square) []Square {
	var path []Square
	for s := finish; s != start; s = parent[s.Row][s.Col] {
		path = append(path, s)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FormatPath joins the squares of a path with arrows.
func FormatPath(path []Square) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}
