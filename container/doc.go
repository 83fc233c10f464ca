// Package container provides a type-safe heterogeneous container.
//
// A Container maps type witnesses to values of the witnessed type. Every value is checked
// against its witness when it is put, so a later Get can never observe a value whose type
// disagrees with its key. Bypassing that check is impossible: the erased PutAny path runs
// through the same validation as the typed Put.
//
// Key types and functions:
//   - Container: the store, created with New
//   - Put / Get: typed access through a witness.Of[T]
//   - PutAny / GetAny: erased access through a witness.Type
//   - Option: functional options such as WithLogger and WithMetrics
//
// Common usage pattern:
//
//	favorites, err := container.New(container.WithLogger(slog.Default()))
//	if err != nil {
//		// handle error
//	}
//
//	_ = container.Put(favorites, witness.For[string](), "Java")
//	_ = container.Put(favorites, witness.For[int](), 0xcafebabe)
//
//	s, ok := container.Get(favorites, witness.For[string]()) // "Java", true
//	_, ok = container.Get(favorites, witness.For[float64]()) // ok == false
//
// A Container is not safe for concurrent use. Callers sharing one across goroutines must hold
// their own lock across a full put-then-get sequence.
package container
