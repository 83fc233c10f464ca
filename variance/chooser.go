package variance

import (
	"errors"
	"math/rand/v2"

	"github.com/AntonStoeckl/typed-container-go/collection"
)

var ErrNoChoices = errors.New("chooser needs at least one choice")

// Chooser picks random elements from a snapshot taken at construction.
type Chooser[T any] struct {
	choices []T
	intN    func(n int) int
}

// NewChooser snapshots choices. Later changes to the underlying collection are not observed.
func NewChooser[T any](choices collection.Producer[T]) (*Chooser[T], error) {
	return NewChooserWithSource(choices, rand.IntN)
}

// NewChooserWithSource is like NewChooser with a custom random source; intN must return a value in [0, n).
func NewChooserWithSource[T any](choices collection.Producer[T], intN func(n int) int) (*Chooser[T], error) {
	snapshot := collection.Collect(choices)
	if len(snapshot) == 0 {
		return nil, ErrNoChoices
	}

	return &Chooser[T]{choices: snapshot, intN: intN}, nil
}

// Choose returns a randomly selected element.
func (c *Chooser[T]) Choose() T {
	return c.choices[c.intN(len(c.choices))]
}
