// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package linkedlist implements a singly linked list that tracks its head,
// tail and size.
package linkedlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned for positions outside the list.
	ErrOutOfRange = errors.New("linkedlist: index out of range")

	// ErrEmpty is returned when removing from an empty list.
	ErrEmpty = errors.New("linkedlist: list is empty")
)

type element[T comparable] struct {
	value T
	next  *element[T]
}

// List is a singly linked list. The zero value is an empty list ready
// to use.
type List[T comparable] struct {
	head *element[T]
	tail *element[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Head returns the first value.
func (l *List[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Tail returns the last value.
func (l *List[T]) Tail() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.value, true
}

// Prepend adds value at the front.
func (l *List[T]) Prepend(value T) {
	l.head = &element[T]{value: value, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// Append adds value at the back.
func (l *List[T]) Append(value T) {
	e := &element[T]{value: value}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.size++
}

// InsertAt places value so that it ends up at position index. Valid
// positions are 0 through Len(), the latter appending.
func (l *List[T]) InsertAt(value T, index int) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("insert at %d of %d: %w", index, l.size, ErrOutOfRange)
	}
	switch index {
	case 0:
		l.Prepend(value)
	case l.size:
		l.Append(value)
	default:
		prev := l.elementAt(index - 1)
		prev.next = &element[T]{value: value, next: prev.next}
		l.size++
	}
	return nil
}

// At returns the value at position index.
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("at %d of %d: %w", index, l.size, ErrOutOfRange)
	}
	return l.elementAt(index).value, nil
}

func (l *List[T]) elementAt(index int) *element[T] {
	e := l.head
	for i := 0; i < index; i++ {
		e = e.next
	}
	return e
}

// Pop removes and returns the last value.
func (l *List[T]) Pop() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.RemoveAt(l.size - 1)
}

// RemoveAt removes and returns the value at position index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, fmt.Errorf("remove at %d of %d: %w", index, l.size, ErrOutOfRange)
	}

	var removed *element[T]
	if index == 0 {
		removed = l.head
		l.head = removed.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.elementAt(index - 1)
		removed = prev.next
		prev.next = removed.next
		if removed == l.tail {
			l.tail = prev
		}
	}
	l.size--
	return removed.value, nil
}

// Contains reports whether value is in the list.
func (l *List[T]) Contains(value T) bool {
	_, ok := l.Find(value)
	return ok
}

// Find returns the position of the first occurrence of value.
func (l *List[T]) Find(value T) (int, bool) {
	i := 0
	for e := l.head; e != nil; e = e.next {
		if e.value == value {
			return i, true
		}
		i++
	}
	return 0, false
}

// Values returns the values from head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for e := l.head; e != nil; e = e.next {
		out = append(out, e.value)
	}
	return out
}

// String renders the list as "(a) -> (b) -> null", or "" when empty.
func (l *List[T]) String() string {
	if l.head == nil {
		return ""
	}
	var sb strings.Builder
	for e := l.head; e != nil; e = e.next {
		fmt.Fprintf(&sb, "(%v) -> ", e.value)
	}
	sb.WriteString("null")
	return sb.String()
}
