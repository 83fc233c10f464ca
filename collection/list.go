package collection

import (
	"iter"
	"slices"
)

// List is an ordered collection that allows duplicates. The zero value is ready to use.
type List[E any] struct {
	items []E
}

// NewList creates a List holding a copy of elems.
func NewList[E any](elems ...E) *List[E] {
	return &List[E]{items: slices.Clone(elems)}
}

// NewListWithCapacity creates an empty List with room for n elements.
func NewListWithCapacity[E any](n int) *List[E] {
	return &List[E]{items: make([]E, 0, n)}
}

func (l *List[E]) Add(e E) { l.items = append(l.items, e) }

func (l *List[E]) All() iter.Seq[E] { return slices.Values(l.items) }

func (l *List[E]) Len() int { return len(l.items) }

// Get returns the element at index i.
func (l *List[E]) Get(i int) (E, bool) {
	if i < 0 || i >= len(l.items) {
		var zero E
		return zero, false
	}

	return l.items[i], true
}

// Set replaces the element at index i and returns the previous one.
func (l *List[E]) Set(i int, e E) (E, bool) {
	if i < 0 || i >= len(l.items) {
		var zero E
		return zero, false
	}

	prev := l.items[i]
	l.items[i] = e

	return prev, true
}

// Swap exchanges the elements at i and j. It reports false if either index is out of range.
func (l *List[E]) Swap(i, j int) bool {
	if i < 0 || j < 0 || i >= len(l.items) || j >= len(l.items) {
		return false
	}

	l.items[i], l.items[j] = l.items[j], l.items[i]

	return true
}

// Slice returns a copy of the elements.
func (l *List[E]) Slice() []E {
	return slices.Clone(l.items)
}

// ReadOnly returns a live producer view of l.
func (l *List[E]) ReadOnly() Producer[E] {
	return ReadOnly[E](l)
}
