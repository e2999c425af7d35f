package bitvec

import "errors"

var (
	// ErrNegativeSize is returned by the array constructors for a
	// negative word count.
	ErrNegativeSize = errors.New("negative size")

	// ErrOutOfRange is returned when a view's offset and length do not
	// fit inside its backing array, or a slice range is invalid.
	ErrOutOfRange = errors.New("bit range out of storage bounds")

	// ErrUniverseOverflow is returned by interop conversions when a bit
	// index does not fit the target container's 32-bit universe.
	ErrUniverseOverflow = errors.New("bit index exceeds 32-bit universe")
)
