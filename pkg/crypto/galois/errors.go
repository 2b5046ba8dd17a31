package galois

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField is the parent of every construction error in this package.
	ErrInvalidField = errors.New("invalid field definition")

	// ErrFieldOrder is returned when the order is not a power of two in [4, 256].
	ErrFieldOrder = fmt.Errorf("%w: order must be a power of two between 4 and 256", ErrInvalidField)

	// ErrInvalidBit is returned when a generator bit vector holds a value other than 0 or 1.
	ErrInvalidBit = fmt.Errorf("%w: generator bits must be 0 or 1", ErrInvalidField)

	// ErrDegreeMismatch is returned when the generator degree differs from log2(order).
	ErrDegreeMismatch = fmt.Errorf("%w: generator degree does not match field order", ErrInvalidField)

	// ErrReducible is returned when the generator polynomial has a non-trivial factor.
	ErrReducible = fmt.Errorf("%w: generator polynomial is reducible", ErrInvalidField)

	// ErrNotPrimitive is returned when x does not generate the multiplicative group.
	ErrNotPrimitive = fmt.Errorf("%w: x is not a primitive element", ErrInvalidField)
)
