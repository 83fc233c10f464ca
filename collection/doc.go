// Package collection provides generic collections split into two capabilities:
//
//   - Producer[E]: read-only, exposes no mutating operation at all
//   - Consumer[E]: write-capable, accepts elements
//
// Generic algorithms take producers for the inputs they only read and consumers for the
// outputs they write. Because a producer view carries no mutator in its method set, writing
// through it is rejected by the compiler, not by a runtime check.
//
// Key types:
//   - List: ordered collection, allows duplicates
//   - Set: insertion-ordered collection without duplicates
//   - Stack: LIFO collection with bulk PushAll/PopAll
//
// None of the collections are safe for concurrent mutation.
package collection
