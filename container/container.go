package container

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/typed-container-go/witness"
)

// Container is a heterogeneous store keyed by type witnesses.
//
// Invariant: every stored value is accepted by the witness it is stored under.
// It is established by putEntry, the only write path, and never invalidated afterward.
type Container struct {
	entries          map[witness.Type]any
	id               uuid.UUID
	capacity         int
	logger           Logger
	metricsCollector MetricsCollector
}

// New creates an empty Container with optional configuration.
func New(options ...Option) (*Container, error) {
	c := &Container{}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	if c.id == uuid.Nil {
		c.id = uuid.New()
	}

	c.entries = make(map[witness.Type]any, c.capacity)

	return c, nil
}

// ID returns the identifier of the Container.
func (c *Container) ID() uuid.UUID {
	return c.id
}

// Put stores value under w, overwriting any previous entry for w.
// If value does not match w, e.g. a nil interface value, the Container is left unchanged
// and a *witness.TypeMismatchError is returned.
func Put[T any](c *Container, w witness.Of[T], value T) error {
	return c.putEntry(w.Type(), value)
}

// PutAny is the erased form of Put. It performs the same validation.
func PutAny(c *Container, t witness.Type, value any) error {
	return c.putEntry(t, value)
}

// Get returns the value stored under w, or false if nothing was ever put under w.
func Get[T any](c *Container, w witness.Of[T]) (T, bool) {
	v, ok := c.getEntry(w.Type())
	if !ok {
		var zero T
		return zero, false
	}

	typed, err := w.Cast(v)
	if err != nil {
		panic(fmt.Sprintf("bug: container entry violates its witness: %v", err))
	}

	return typed, true
}

// GetAny is the erased form of Get.
func GetAny(c *Container, t witness.Type) (any, bool) {
	v, ok := c.getEntry(t)
	if !ok {
		return nil, false
	}

	if !t.Accepts(v) {
		panic(fmt.Sprintf("bug: container entry violates its witness %s: holds %T", t, v))
	}

	return v, true
}

// Has reports whether a value is stored under t.
func (c *Container) Has(t witness.Type) bool {
	if t.IsZero() {
		panic("container: zero witness used")
	}

	_, ok := c.entries[t]
	return ok
}

// Len returns the number of entries.
func (c *Container) Len() int {
	return len(c.entries)
}

// Types returns the witnesses of all entries sorted by their descriptor.
func (c *Container) Types() []witness.Type {
	types := make([]witness.Type, 0, len(c.entries))
	for t := range c.entries {
		types = append(types, t)
	}

	slices.SortFunc(types, func(a, b witness.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	return types
}

func (c *Container) putEntry(t witness.Type, value any) error {
	if t.IsZero() {
		panic("container: zero witness used")
	}

	start := time.Now()

	checked, err := t.Cast(value)
	if err != nil {
		c.recordPut(t, statusMismatch, time.Since(start))
		c.logRejected(t, value)

		return err
	}

	_, overwritten := c.entries[t]
	c.entries[t] = checked

	c.recordPut(t, statusSuccess, time.Since(start))
	c.logStored(t, overwritten)

	return nil
}

func (c *Container) getEntry(t witness.Type) (any, bool) {
	if t.IsZero() {
		panic("container: zero witness used")
	}

	start := time.Now()

	v, ok := c.entries[t]
	if !ok {
		c.recordGet(t, statusMiss, time.Since(start))
		c.logMiss(t)

		return nil, false
	}

	c.recordGet(t, statusHit, time.Since(start))

	return v, true
}
