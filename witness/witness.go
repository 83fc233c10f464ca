package witness

import (
	"reflect"

	"github.com/google/uuid"
)

// typeNamespace scopes the name based UUIDs handed out by Type.ID.
var typeNamespace = uuid.MustParse("5b0e4c1e-7d35-4f5c-9a43-3c1c2a3e9f10")

/***** Type *****/

// Type is the erased witness of exactly one Go type.
//
// Two Types are equal iff they denote the same type, so a Type can be used directly as a map key.
// The zero Type denotes nothing; handing it to any operation is a programming error and panics.
type Type struct {
	rtype reflect.Type
}

// TypeOf returns the witness of v's dynamic type.
// It panics for a nil interface value, which has no dynamic type.
func TypeOf(v any) Type {
	if v == nil {
		panic("witness: TypeOf called with a nil interface value")
	}

	return Type{rtype: reflect.TypeOf(v)}
}

// IsZero reports whether t is the zero Type.
func (t Type) IsZero() bool {
	return t.rtype == nil
}

// String returns the Go descriptor of the witnessed type, e.g. "string" or "*time.Location".
func (t Type) String() string {
	if t.rtype == nil {
		return nilTypeDescriptor
	}

	return t.rtype.String()
}

// ID returns a name based UUID of the package path and type descriptor.
// It is stable across processes as long as both do not change. Types that share both, such as
// function-local types of the same name in one package, share an ID; compare Types, not IDs,
// to tell types apart.
func (t Type) ID() uuid.UUID {
	t.mustBeValid()

	return uuid.NewSHA1(typeNamespace, []byte(t.rtype.PkgPath()+"."+t.rtype.String()))
}

// IsInterface reports whether the witnessed type is an interface type.
func (t Type) IsInterface() bool {
	t.mustBeValid()

	return t.rtype.Kind() == reflect.Interface
}

// IsSubtypeOf reports whether t is u, or u is an interface type implemented by t.
// It matches Go's type assertion rules, so any value of type t asserts to u whenever this holds.
func (t Type) IsSubtypeOf(u Type) bool {
	t.mustBeValid()
	u.mustBeValid()

	if t.rtype == u.rtype {
		return true
	}

	return u.rtype.Kind() == reflect.Interface && t.rtype.Implements(u.rtype)
}

// Accepts reports whether v may be stored under t.
// A nil interface value is never accepted.
func (t Type) Accepts(v any) bool {
	t.mustBeValid()

	if v == nil {
		return false
	}

	return Type{rtype: reflect.TypeOf(v)}.IsSubtypeOf(t)
}

// Cast returns v unchanged if t accepts it, otherwise a TypeMismatchError.
func (t Type) Cast(v any) (any, error) {
	if !t.Accepts(v) {
		return nil, newTypeMismatchError(t, v)
	}

	return v, nil
}

func (t Type) mustBeValid() {
	if t.rtype == nil {
		panic("witness: zero Type used")
	}
}

/***** Of *****/

// Of is the typed witness for T.
type Of[T any] struct {
	typ Type
}

// For returns the witness for T. Every call for the same T returns an equal witness.
func For[T any]() Of[T] {
	return Of[T]{typ: Type{rtype: reflect.TypeFor[T]()}}
}

// Type returns the erased witness.
func (w Of[T]) Type() Type {
	w.typ.mustBeValid()

	return w.typ
}

// String returns the descriptor of T.
func (w Of[T]) String() string {
	return w.typ.String()
}

// Cast returns v as a T or a TypeMismatchError.
func (w Of[T]) Cast(v any) (T, error) {
	w.typ.mustBeValid()

	if t, ok := v.(T); ok {
		return t, nil
	}

	var zero T
	return zero, newTypeMismatchError(w.typ, v)
}

// AsSubtype returns t if t is a subtype of T, otherwise a TypeMismatchError.
// It lets a witness obtained at runtime, e.g. from a Registry, be bounded by a static type.
func AsSubtype[T any](t Type) (Type, error) {
	bound := For[T]().Type()
	if !t.IsSubtypeOf(bound) {
		return Type{}, &TypeMismatchError{Expected: bound.String(), Actual: t.String()}
	}

	return t, nil
}
