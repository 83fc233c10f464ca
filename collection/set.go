package collection

import (
	"iter"
	"reflect"
	"slices"
)

// Set is a collection of unique elements that iterates in insertion order.
//
// Equality is Go's == on E. When E is an interface type, two elements are equal only if their
// dynamic types and values are equal. An element that holds a non-comparable dynamic value, such as
// a slice stored in an any, has no equality at all: it is always added and never contained.
type Set[E comparable] struct {
	m       map[E]struct{}
	order   []E
	dynamic bool
}

// NewSet creates a Set holding elems, duplicates dropped.
func NewSet[E comparable](elems ...E) *Set[E] {
	s := &Set[E]{}
	s.init(len(elems))

	for _, e := range elems {
		s.Add(e)
	}

	return s
}

func (s *Set[E]) init(capacity int) {
	if s.m != nil {
		return
	}

	s.m = make(map[E]struct{}, capacity)
	s.dynamic = mayHoldNonComparable(reflect.TypeFor[E]())
}

// Add inserts e unless it is already present.
func (s *Set[E]) Add(e E) {
	s.init(0)

	if !s.hashable(e) {
		s.order = append(s.order, e)
		return
	}

	if _, found := s.m[e]; found {
		return
	}

	s.m[e] = struct{}{}
	s.order = append(s.order, e)
}

// Contains reports whether e is in s.
func (s *Set[E]) Contains(e E) bool {
	if s.m == nil || !s.hashable(e) {
		return false
	}

	_, ok := s.m[e]
	return ok
}

func (s *Set[E]) All() iter.Seq[E] { return slices.Values(s.order) }

func (s *Set[E]) Len() int { return len(s.order) }

// Slice returns a copy of the elements in insertion order.
func (s *Set[E]) Slice() []E {
	return slices.Clone(s.order)
}

// ReadOnly returns a live producer view of s.
func (s *Set[E]) ReadOnly() Producer[E] {
	return ReadOnly[E](s)
}

// hashable reports whether e can be used as a map key without panicking.
func (s *Set[E]) hashable(e E) bool {
	if !s.dynamic {
		return true
	}

	v := reflect.ValueOf(any(e))

	return !v.IsValid() || v.Comparable()
}

// mayHoldNonComparable reports whether a comparable type t can still carry a non-comparable
// dynamic value, which is only possible through an interface somewhere inside it.
func mayHoldNonComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayHoldNonComparable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if mayHoldNonComparable(t.Field(i).Type) {
				return true
			}
		}
	default:
	}

	return false
}
