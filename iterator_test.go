// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bstree

import (
	"fmt"
	"slices"
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

type readableString string

func TestIterateLowerBoundFuzz(t *testing.T) {
	r := New[string, any](nil)
	var set []string

	// Each call adds a new random key to the tree and checks that seeking
	// to a random key and iterating to the end matches filtering a plain
	// sorted list of the same keys.

	treeAddAndScan := func(newKey, searchKey readableString) []string {
		r.Insert(string(newKey), nil)

		it := r.Iterator()
		it.SeekLowerBound(string(searchKey))
		var result []string
		for {
			key, _, ok := it.Next()
			if !ok {
				break
			}
			result = append(result, key)
		}
		return result
	}

	sliceAddSortAndFilter := func(newKey, searchKey readableString) []string {
		set = append(set, string(newKey))
		sort.Strings(set)

		var result []string
		for i, k := range set {
			// Skip duplicates; the empty string is a valid key so we can't
			// just remember the last one.
			if i > 0 && set[i-1] == k {
				continue
			}
			if k >= string(searchKey) {
				result = append(result, k)
			}
		}
		return result
	}

	if err := quick.CheckEqual(treeAddAndScan, sliceAddSortAndFilter, nil); err != nil {
		t.Error(err)
	}
}

func TestIterateLowerBound(t *testing.T) {

	// these should be defined in order
	var fixedLenKeys = []string{
		"00000",
		"00001",
		"00004",
		"00010",
		"00020",
		"20020",
	}

	// these should be defined in order
	var mixedLenKeys = []string{
		"a1",
		"abc",
		"barbazboo",
		"f",
		"foo",
		"found",
		"zap",
		"zip",
	}

	type exp struct {
		keys   []string
		search string
		want   []string
	}
	cases := []exp{
		{fixedLenKeys, "00000", fixedLenKeys},
		{fixedLenKeys, "00003", []string{"00004", "00010", "00020", "20020"}},
		{fixedLenKeys, "00010", []string{"00010", "00020", "20020"}},
		{fixedLenKeys, "20000", []string{"20020"}},
		{fixedLenKeys, "20020", []string{"20020"}},
		{fixedLenKeys, "20022", []string{}},
		{mixedLenKeys, "A", mixedLenKeys},
		{mixedLenKeys, "a1", mixedLenKeys},
		{mixedLenKeys, "b", []string{"barbazboo", "f", "foo", "found", "zap", "zip"}},
		{mixedLenKeys, "barbazboo0", []string{"f", "foo", "found", "zap", "zip"}},
		{mixedLenKeys, "zippy", []string{}},
		{mixedLenKeys, "zi", []string{"zip"}},
		{[]string{"f", "fo", "foo", "food", "bug", ""}, "foo", []string{"foo", "food"}},
		{[]string{"f", "bug", ""}, "", []string{"", "bug", "f"}},
		{[]string{"gcgc"}, "", []string{"gcgc"}},
	}

	for idx, test := range cases {
		t.Run(fmt.Sprintf("case%03d", idx), func(t *testing.T) {
			r := New[string, any](nil)
			for _, k := range test.keys {
				if _, ok := r.Insert(k, nil); ok {
					t.Fatalf("duplicate key %s in keys", k)
				}
			}
			if r.Len() != len(test.keys) {
				t.Fatal("failed adding keys")
			}

			iter := r.Iterator()
			iter.SeekLowerBound(test.search)

			var out []string
			for {
				key, _, ok := iter.Next()
				if !ok {
					break
				}
				out = append(out, key)
			}
			if !slices.Equal(out, test.want) {
				t.Fatalf("mis-match: key=%s\n  got=%v\n  want=%v", test.search,
					out, test.want)
			}
		})
	}
}

func TestIterateLowerBound_AfterEdits(t *testing.T) {
	t.Parallel()

	tree := New(entriesOf(10, 20, 30, 40, 50, 60, 70, 80, 90, 100))
	// 60 is the root; 30 has two children.
	for _, k := range []int{60, 30, 50} {
		_, found := tree.Delete(k)
		require.True(t, found)
	}
	tree.Insert(55, 5500)
	require.Equal(t, []int{10, 20, 40, 55, 70, 80, 90, 100}, keysOf(tree.InOrder()))

	seek := func(key int) []int {
		it := tree.Iterator()
		it.SeekLowerBound(key)
		var out []int
		for {
			k, _, ok := it.Next()
			if !ok {
				break
			}
			out = append(out, k)
		}
		return out
	}

	type exp struct {
		search int
		want   []int
	}
	cases := []exp{
		{-5, []int{10, 20, 40, 55, 70, 80, 90, 100}},
		{30, []int{40, 55, 70, 80, 90, 100}},
		{50, []int{55, 70, 80, 90, 100}},
		{55, []int{55, 70, 80, 90, 100}},
		{60, []int{70, 80, 90, 100}},
		{100, []int{100}},
		{101, nil},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, seek(tc.search), "search %d", tc.search)
	}

	// Every seek agrees with filtering the in-order keys.
	keys := keysOf(tree.InOrder())
	for search := 0; search <= 105; search++ {
		var want []int
		for _, k := range keys {
			if k >= search {
				want = append(want, k)
			}
		}
		require.Equal(t, want, seek(search), "search %d", search)
	}
}

func TestIterator_MatchesInOrder(t *testing.T) {
	t.Parallel()

	tree := New(entriesOf(15, 3, 9, 27, 1, 4, 40, 22))
	tree.Insert(5, 500)
	tree.Delete(27)

	var got []Entry[int, int]
	it := tree.Iterator()
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, Entry[int, int]{Key: k, Value: v})
	}
	require.Equal(t, tree.InOrder(), got)

	_, _, ok := it.Next()
	require.False(t, ok)
}

func TestReverseIterator(t *testing.T) {
	t.Parallel()

	tree := New(entriesOf(15, 3, 9, 27, 1, 4, 40, 22))

	var got []int
	ri := tree.ReverseIterator()
	for {
		k, _, ok := ri.Previous()
		if !ok {
			break
		}
		got = append(got, k)
	}
	want := keysOf(tree.InOrder())
	slices.Reverse(want)
	require.Equal(t, want, got)
}

func TestReverseIterator_SeekReverseLowerBound(t *testing.T) {
	t.Parallel()

	tree := New(entriesOf(10, 20, 30, 40, 50))

	type exp struct {
		search int
		want   []int
	}
	cases := []exp{
		{5, nil},
		{10, []int{10}},
		{25, []int{20, 10}},
		{40, []int{40, 30, 20, 10}},
		{99, []int{50, 40, 30, 20, 10}},
	}
	for _, tc := range cases {
		ri := tree.ReverseIterator()
		ri.SeekReverseLowerBound(tc.search)

		var got []int
		for {
			k, _, ok := ri.Previous()
			if !ok {
				break
			}
			got = append(got, k)
		}
		require.Equal(t, tc.want, got, "search %d", tc.search)
	}
}

func TestIterator_EmptyTree(t *testing.T) {
	t.Parallel()

	tree := New[int, int](nil)
	_, _, ok := tree.Iterator().Next()
	require.False(t, ok)
	_, _, ok = tree.ReverseIterator().Previous()
	require.False(t, ok)

	it := tree.Iterator()
	it.SeekLowerBound(3)
	_, _, ok = it.Next()
	require.False(t, ok)
}

func TestPathIterator(t *testing.T) {
	t.Parallel()

	tree := New(entriesOf(1, 2, 3, 4, 5, 6, 7))

	type exp struct {
		key  int
		want []int
	}
	cases := []exp{
		{4, []int{4}},
		{5, []int{4, 6, 5}},
		{3, []int{4, 2, 3}},
		{8, []int{4, 6, 7}},
		{0, []int{4, 2, 1}},
	}
	for _, tc := range cases {
		var got []int
		it := tree.PathIterator(tc.key)
		for {
			k, _, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, k)
		}
		require.Equal(t, tc.want, got, "key %d", tc.key)

		if depth, found := tree.Depth(tc.key); found {
			require.Equal(t, len(got)-1, depth)
		}
	}

	_, _, ok := New[int, int](nil).PathIterator(1).Next()
	require.False(t, ok)
}
