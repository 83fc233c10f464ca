package variance

import (
	"github.com/AntonStoeckl/typed-container-go/collection"
)

// Union returns a new Set holding every element of a followed by every element of b that is not
// already present. Neither input is modified.
func Union[E comparable](a, b collection.Producer[E]) *collection.Set[E] {
	result := collection.NewSet[E]()

	for e := range a.All() {
		result.Add(e)
	}

	for e := range b.All() {
		result.Add(e)
	}

	return result
}

// CopyAll appends every element of src to dst in src's iteration order.
func CopyAll[E any](dst collection.Consumer[E], src collection.Producer[E]) {
	for e := range src.All() {
		dst.Add(e)
	}
}

// UnionFunc returns a new List holding every element of a followed by every element of b whose
// key was not seen before. It serves element types without a usable ==, e.g. slices.
func UnionFunc[E any, K comparable](a, b collection.Producer[E], key func(E) K) *collection.List[E] {
	result := collection.NewListWithCapacity[E](a.Len() + b.Len())
	seen := make(map[K]struct{}, a.Len()+b.Len())

	for _, src := range []collection.Producer[E]{a, b} {
		for e := range src.All() {
			k := key(e)
			if _, dup := seen[k]; dup {
				continue
			}

			seen[k] = struct{}{}
			result.Add(e)
		}
	}

	return result
}

// ElementsInCommon counts the distinct elements of a that also occur in b.
// Elements without equality, such as slices held in an any, are never in common.
func ElementsInCommon[E comparable](a, b collection.Producer[E]) int {
	inB := collection.NewSet[E]()
	CopyAll[E](inB, b)

	seen := collection.NewSet[E]()
	result := 0

	for e := range a.All() {
		if seen.Contains(e) {
			continue
		}
		seen.Add(e)

		if inB.Contains(e) {
			result++
		}
	}

	return result
}
