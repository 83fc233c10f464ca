package variance

import (
	"cmp"
	"errors"

	"github.com/AntonStoeckl/typed-container-go/collection"
)

var ErrEmptyProducer = errors.New("producer has no elements")

// Max returns the greatest element of p. Among equal maxima the first one wins.
func Max[E cmp.Ordered](p collection.Producer[E]) (E, error) {
	return MaxFunc(p, cmp.Compare[E])
}

// MaxFunc returns the greatest element of p according to compare. Among equal maxima the first one wins.
func MaxFunc[E any](p collection.Producer[E], compare func(a, b E) int) (E, error) {
	var result E
	found := false

	for e := range p.All() {
		if !found || compare(e, result) > 0 {
			result = e
			found = true
		}
	}

	if !found {
		return result, ErrEmptyProducer
	}

	return result, nil
}
