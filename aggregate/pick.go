package aggregate

import (
	"math/rand/v2"
)

// PickTwo returns two of the three arguments, chosen at random, in argument order.
// The result is a new slice; no caller storage is referenced.
func PickTwo[T any](a, b, c T) []T {
	return pickTwo(a, b, c, rand.IntN)
}

func pickTwo[T any](a, b, c T, intN func(n int) int) []T {
	switch intN(3) {
	case 0:
		return []T{a, b}
	case 1:
		return []T{a, c}
	case 2:
		return []T{b, c}
	}

	panic("bug: random source returned a value outside [0, 3)")
}
