package container

import (
	"github.com/google/uuid"
)

// Option defines a functional option for configuring a Container.
type Option func(*Container) error

// WithLogger sets the logger for the Container.
//
// Debug level: stored values, overwrites and lookup misses
// Warn level: puts rejected because of a type mismatch (the error is still returned to the caller).
func WithLogger(logger Logger) Option {
	return func(c *Container) error {
		c.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Container.
// It receives put/get counters labelled by status and witness, and the current number of entries.
func WithMetrics(collector MetricsCollector) Option {
	return func(c *Container) error {
		c.metricsCollector = collector
		return nil
	}
}

// WithCapacity pre-sizes the Container for n entries.
func WithCapacity(n int) Option {
	return func(c *Container) error {
		if n < 0 {
			return ErrNegativeCapacity
		}

		c.capacity = n

		return nil
	}
}

// WithID sets the identifier the Container reports in logs. The default is a random UUID.
func WithID(id uuid.UUID) Option {
	return func(c *Container) error {
		if id == uuid.Nil {
			return ErrNilContainerID
		}

		c.id = id

		return nil
	}
}
