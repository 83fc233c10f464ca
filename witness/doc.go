// Package witness provides first-class runtime values that stand for Go types.
//
// A witness is used as a key by the heterogeneous container and as a checked-cast
// capability: given an arbitrary value it yields either the typed value or a
// TypeMismatchError describing the expected and the actual type.
//
// Key types:
//   - Type: the erased, comparable witness (usable as a map key)
//   - Of[T]: the typed witness obtained with For[T]()
//   - Registry: name based lookup of witnesses
//   - TypeMismatchError: the only recoverable error of this package
//
// Common usage pattern:
//
//	w := witness.For[string]()
//
//	s, err := w.Cast(value)
//	if err != nil {
//		// err wraps witness.ErrTypeMismatch
//	}
//
// Interface types may be witnessed as well. Casting against an interface witness
// succeeds for every value whose dynamic type implements the interface:
//
//	stringers := witness.For[fmt.Stringer]()
//	s, err := stringers.Cast(time.Second)
package witness
