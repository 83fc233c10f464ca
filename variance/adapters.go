package variance

import (
	"iter"

	"github.com/AntonStoeckl/typed-container-go/collection"
	"github.com/AntonStoeckl/typed-container-go/witness"
)

// checkSubtype returns a TypeMismatchError unless S is a subtype of E.
func checkSubtype[S, E any]() error {
	sub := witness.For[S]().Type()
	super := witness.For[E]().Type()

	if !sub.IsSubtypeOf(super) {
		return &witness.TypeMismatchError{Expected: super.String(), Actual: sub.String()}
	}

	return nil
}

// convert turns s into an E. Callers guarantee S is a subtype of E, so the assertion only
// fails for a nil interface value, which becomes the zero E.
func convert[S, E any](s S) E {
	e, _ := any(s).(E)
	return e
}

/***** covariant producer *****/

type upcastProducer[S, E any] struct {
	src collection.Producer[S]
	up  func(S) E
}

func (u upcastProducer[S, E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for s := range u.src.All() {
			if !yield(u.up(s)) {
				return
			}
		}
	}
}

func (u upcastProducer[S, E]) Len() int { return u.src.Len() }

// Upcast returns a live read-only view of p with element type E.
// It fails with a witness.TypeMismatchError unless S is a subtype of E.
func Upcast[E, S any](p collection.Producer[S]) (collection.Producer[E], error) {
	if err := checkSubtype[S, E](); err != nil {
		return nil, err
	}

	return upcastProducer[S, E]{src: p, up: convert[S, E]}, nil
}

// MustUpcast is like Upcast but panics if S is not a subtype of E.
func MustUpcast[E, S any](p collection.Producer[S]) collection.Producer[E] {
	view, err := Upcast[E](p)
	if err != nil {
		panic(err)
	}

	return view
}

// UpcastWith returns a live read-only view of p that converts each element with up.
// Passing a plain assignment such as func(i int) any { return i } lets the compiler check the variance.
func UpcastWith[E, S any](p collection.Producer[S], up func(S) E) collection.Producer[E] {
	return upcastProducer[S, E]{src: p, up: up}
}

/***** contravariant consumer *****/

type acceptingConsumer[S, E any] struct {
	dst collection.Consumer[E]
}

func (a acceptingConsumer[S, E]) Add(s S) {
	a.dst.Add(convert[S, E](s))
}

// Accepting returns a write-only view of c that takes elements of type S.
// It fails with a witness.TypeMismatchError unless S is a subtype of E.
func Accepting[S, E any](c collection.Consumer[E]) (collection.Consumer[S], error) {
	if err := checkSubtype[S, E](); err != nil {
		return nil, err
	}

	return acceptingConsumer[S, E]{dst: c}, nil
}
