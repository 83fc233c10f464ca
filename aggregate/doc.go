// Package aggregate gathers elements from a variable number of producers into one new, owned collection.
//
// A variadic parameter in Go is a slice, and a caller passing s... hands over its own backing array.
// The functions here only ever read that slice. They snapshot it into a local buffer, which is
// consumed and dropped before returning, and they return freshly allocated storage only.
package aggregate
