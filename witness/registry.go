package witness

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrEmptyTypeName     = errors.New("empty type name supplied")
	ErrAmbiguousTypeName = errors.New("type name is already registered for a different type")
)

// Registry resolves type descriptors to witnesses.
//
// Go cannot materialize a type from its name, so a type must be registered before it can be looked up.
// A Registry is not safe for concurrent mutation; populate it before sharing it.
type Registry struct {
	types map[string]Type
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Type)}
}

// Register adds t under its descriptor. Registering the same type twice is a no-op.
//
// Distinct types can share a descriptor, e.g. two function-local types named T in one package.
// Registering a second type under a taken descriptor fails with ErrAmbiguousTypeName and keeps the first.
func (r *Registry) Register(t Type) error {
	t.mustBeValid()

	name := t.String()
	if registered, ok := r.types[name]; ok && registered != t {
		return fmt.Errorf("%w: %s", ErrAmbiguousTypeName, name)
	}

	r.types[name] = t

	return nil
}

// Lookup returns the witness registered under name.
func (r *Registry) Lookup(name string) (Type, error) {
	if name == "" {
		return Type{}, ErrEmptyTypeName
	}

	t, ok := r.types[name]
	if !ok {
		return Type{}, &UnknownTypeError{Name: name}
	}

	return t, nil
}

// Names returns all registered descriptors in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Register adds the witness for T to r and returns it.
func Register[T any](r *Registry) (Of[T], error) {
	w := For[T]()
	if err := r.Register(w.Type()); err != nil {
		return Of[T]{}, err
	}

	return w, nil
}

var ErrUnknownType = errors.New("type is not registered")

// UnknownTypeError is returned by Registry.Lookup for unregistered names.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return ErrUnknownType.Error() + ": " + e.Name
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}
