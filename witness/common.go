package witness

import (
	"errors"
	"fmt"
)

var ErrTypeMismatch = errors.New("runtime type does not match witness")

const nilTypeDescriptor = "<nil>"

// TypeMismatchError is returned whenever a value's runtime type disagrees with a witness.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func newTypeMismatchError(expected Type, v any) *TypeMismatchError {
	return &TypeMismatchError{
		Expected: expected.String(),
		Actual:   describe(v),
	}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", ErrTypeMismatch.Error(), e.Expected, e.Actual)
}

// Unwrap makes errors.Is(err, ErrTypeMismatch) work.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func describe(v any) string {
	if v == nil {
		return nilTypeDescriptor
	}

	return fmt.Sprintf("%T", v)
}
