package chai

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by checked accessors and slice constructors.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrBufferTooSmall is returned when caller supplied storage cannot hold the result.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrInvalidElementSize is returned when a buffer is built with a non-positive element size.
	ErrInvalidElementSize = errors.New("invalid element size")
)

// OutOfRange wraps ErrIndexOutOfRange with the offending index and the valid length.
func OutOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

// RangeOutOfBounds wraps ErrIndexOutOfRange for a [start, end) range over count items.
func RangeOutOfBounds(start, end, count int) error {
	return fmt.Errorf("%w: range [%d:%d], count %d", ErrIndexOutOfRange, start, end, count)
}
