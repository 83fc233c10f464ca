package collection

import (
	"iter"
)

// Stack is a LIFO collection backed by a slice. The zero value is ready to use.
//
// All iterates from the top of the stack to the bottom, which is the order Pop would return.
type Stack[E any] struct {
	items []E
}

func (s *Stack[E]) Push(e E) { s.items = append(s.items, e) }

// Add pushes e, making a Stack usable as a Consumer.
func (s *Stack[E]) Add(e E) { s.Push(e) }

func (s *Stack[E]) Pop() (E, bool) {
	if len(s.items) == 0 {
		var zero E
		return zero, false
	}

	top := s.items[len(s.items)-1]
	var zero E
	s.items[len(s.items)-1] = zero // drop the reference held by the backing array
	s.items = s.items[:len(s.items)-1]

	return top, true
}

func (s *Stack[E]) Peek() (E, bool) {
	if len(s.items) == 0 {
		var zero E
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

func (s *Stack[E]) Len() int      { return len(s.items) }
func (s *Stack[E]) IsEmpty() bool { return len(s.items) == 0 }

func (s *Stack[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// PushAll pushes every element of src in src's iteration order. src is only read.
func (s *Stack[E]) PushAll(src Producer[E]) {
	for e := range src.All() {
		s.Push(e)
	}
}

// PopAll pops every element into dst until the stack is empty.
func (s *Stack[E]) PopAll(dst Consumer[E]) {
	for {
		e, ok := s.Pop()
		if !ok {
			return
		}

		dst.Add(e)
	}
}
