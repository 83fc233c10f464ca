// Package variance implements producer-extends/consumer-super (PECS) operations over the
// capabilities of package collection.
//
// Go type arguments are invariant: a Producer[int] is not a Producer[any]. Variance is therefore
// expressed by adapters that are checked once when they are built:
//   - Upcast views a Producer[S] as a Producer[E] when S is a subtype of E (covariance)
//   - Accepting views a Consumer[E] as a Consumer[S] when S is a subtype of E (contravariance)
//   - UpcastWith does the same as Upcast with a conversion function, checked by the compiler
//
// Here "S is a subtype of E" means S is E, or E is an interface type implemented by S.
//
// On top of those adapters the package offers the generic algorithms that read from producers
// and write into consumers: Union, UnionFunc, CopyAll, ElementsInCommon, Max, MaxFunc and Chooser.
//
// Usage:
//
//	ints := collection.NewSet(1, 3, 5)
//	doubles := collection.NewSet(1.1, 3.3, 5.5)
//
//	numbers := variance.Union(
//		variance.MustUpcast[any](ints.ReadOnly()),
//		variance.MustUpcast[any](doubles.ReadOnly()),
//	) // 6 elements
//
// The algorithms allocate only their own results. Passing the same consumer to several
// goroutines at once is the caller's responsibility to serialize.
package variance
