package aggregate

import (
	"slices"

	"github.com/AntonStoeckl/typed-container-go/collection"
)

// Flatten returns a new List holding the elements of every source, concatenated in argument order
// and in each source's iteration order. Flatten() returns an empty List.
func Flatten[E any](sources ...collection.Producer[E]) *collection.List[E] {
	// sources may alias the caller's slice; work on a private snapshot of it.
	buffer := slices.Clone(sources)

	return flatten(buffer)
}

// FlattenAll is like Flatten for a producer of producers.
func FlattenAll[E any](sources collection.Producer[collection.Producer[E]]) *collection.List[E] {
	return flatten(collection.Collect(sources))
}

func flatten[E any](buffer []collection.Producer[E]) *collection.List[E] {
	total := 0
	for _, src := range buffer {
		total += src.Len()
	}

	result := collection.NewListWithCapacity[E](total)
	for _, src := range buffer {
		for e := range src.All() {
			result.Add(e)
		}
	}

	clear(buffer)

	return result
}
