// Package alloc is the single allocation boundary of the library.
//
// Every growable buffer obtains, resizes and releases its backing block
// through an Allocator. The process-wide default is the Go heap; it can be
// replaced once at start-up with SetDefault, or per buffer through
// growbuf.Options.
//
// Blocks handed out by an Allocator hold raw element bytes only. Element
// types stored in them must not contain Go pointers, since blocks may live
// outside the Go heap.
package alloc

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rawbytedev/chai"
)

// ErrUnsupported is returned when an allocator is not available on this platform.
var ErrUnsupported = errors.New("alloc: unsupported on this platform")

// Allocator is the allocate/reallocate/release triple.
type Allocator interface {
	// Alloc returns a zeroed block of exactly size bytes. A size of 0 returns nil.
	Alloc(size int) ([]byte, error)
	// Realloc returns a block of size bytes holding the first min(len(b), size)
	// bytes of b, zero beyond that. b is no longer valid afterwards.
	Realloc(b []byte, size int) ([]byte, error)
	// Free releases b. Freeing nil is a no-op.
	Free(b []byte) error
}

type holder struct{ a Allocator }

var current atomic.Pointer[holder]

func init() {
	current.Store(&holder{a: Heap{}})
}

// Default returns the process-wide allocator.
func Default() Allocator {
	return current.Load().a
}

// SetDefault replaces the process-wide allocator and returns the previous one.
// Buffers keep the allocator they were created with, so this should happen
// before any buffer exists. A nil a restores the heap allocator.
func SetDefault(a Allocator) Allocator {
	if a == nil {
		a = Heap{}
	}
	return current.Swap(&holder{a: a}).a
}

func outOfMemory(size int) error {
	return fmt.Errorf("alloc: %d bytes: %w", size, chai.ErrOutOfMemory)
}
