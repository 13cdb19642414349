//go:build unix

package alloc

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"

	"github.com/rawbytedev/chai"
)

// Mmap allocates each block as a private anonymous mapping. Pages come back
// zeroed from the kernel and are returned to it on Free.
type Mmap struct {
	pageSize int
}

// NewMmap returns an mmap-backed allocator.
func NewMmap() (*Mmap, error) {
	return &Mmap{pageSize: unix.Getpagesize()}, nil
}

// PageSize reports the granularity of the underlying mappings.
func (m *Mmap) PageSize() int { return m.pageSize }

func (m *Mmap) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, outOfMemory(size)
	}
	if size == 0 {
		return nil, nil
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) {
			return nil, outOfMemory(size)
		}
		return nil, fmt.Errorf("alloc: mmap %d bytes: %w", size, err)
	}
	chai.Logger().Debug("mmap", slog.Int("size", size))
	return b, nil
}

func (m *Mmap) Realloc(b []byte, size int) ([]byte, error) {
	nb, err := m.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	if err := m.Free(b); err != nil {
		_ = m.Free(nb)
		return nil, err
	}
	return nb, nil
}

// Free unmaps b. b must come from this allocator and must not be freed
// twice: once unmapped, the kernel may hand the same range to a later Alloc,
// and a second Free would release that block instead.
func (m *Mmap) Free(b []byte) error {
	if cap(b) == 0 {
		return nil
	}
	if err := unix.Munmap(b[:cap(b)]); err != nil {
		return fmt.Errorf("alloc: munmap: %w", err)
	}
	chai.Logger().Debug("munmap", slog.Int("size", cap(b)))
	return nil
}
