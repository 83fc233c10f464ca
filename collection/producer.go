package collection

import (
	"iter"
	"slices"
)

// Producer is a read-only collection.
type Producer[E any] interface {
	// All yields the elements in the collection's iteration order.
	All() iter.Seq[E]

	// Len returns the number of elements.
	Len() int
}

// Consumer is a write-capable collection.
type Consumer[E any] interface {
	// Add appends e to the collection.
	Add(e E)
}

// ProducerConsumer is a collection that can be read from and written to.
type ProducerConsumer[E any] interface {
	Producer[E]
	Consumer[E]
}

// readOnly wraps a Producer so that the dynamic type of the view carries no mutator,
// which rules out type-asserting the view back into the writable collection.
type readOnly[E any] struct {
	src Producer[E]
}

func (r readOnly[E]) All() iter.Seq[E] { return r.src.All() }
func (r readOnly[E]) Len() int         { return r.src.Len() }

// ReadOnly returns a live, read-only view of p.
func ReadOnly[E any](p Producer[E]) Producer[E] {
	if ro, ok := p.(readOnly[E]); ok {
		return ro
	}

	return readOnly[E]{src: p}
}

// sliceProducer is a read-only view over a slice.
type sliceProducer[E any] []E

func (s sliceProducer[E]) All() iter.Seq[E] { return slices.Values(s) }
func (s sliceProducer[E]) Len() int         { return len(s) }

// FromSlice returns a read-only view over s. The view observes later writes into s by its owner.
func FromSlice[E any](s []E) Producer[E] {
	return sliceProducer[E](s)
}

// Of returns a producer over a private copy of elems.
func Of[E any](elems ...E) Producer[E] {
	return sliceProducer[E](slices.Clone(elems))
}

// Collect returns a new slice holding the elements of p in iteration order.
func Collect[E any](p Producer[E]) []E {
	out := make([]E, 0, p.Len())
	for e := range p.All() {
		out = append(out, e)
	}

	return out
}
