// Package growbuf implements the growable buffer engine shared by every
// collection in the library.
//
// A Buffer owns one contiguous block of fixed-size elements and knows nothing
// about their type. Indexes are element indexes. The engine trusts its caller:
// only construction and allocation failures are reported, out of range indexes
// are not checked here. The typed wrappers in pkg/list and pkg/text add the
// checks.
//
// Any method that may reallocate (Append, Insert, Resize growth, Reserve,
// Shrink, Free) invalidates slices previously returned by ElementAt or Bytes.
package growbuf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rawbytedev/chai"
	"github.com/rawbytedev/chai/internal/common"
	"github.com/rawbytedev/chai/pkg/alloc"
)

// Options configures a Buffer at construction.
type Options struct {
	// Allocator backs the buffer. nil selects alloc.Default().
	Allocator alloc.Allocator
}

// Buffer is a type-erased growable block of elements.
type Buffer struct {
	items    []byte
	length   int
	capacity int
	elemSize int
	alloc    alloc.Allocator
}

// New returns a buffer of count zeroed elements of elemSize bytes each.
// A count of 0 allocates nothing.
func New(count, elemSize int) (*Buffer, error) {
	return NewWith(count, elemSize, Options{})
}

// NewWith is New with explicit options.
func NewWith(count, elemSize int, opts Options) (*Buffer, error) {
	if elemSize <= 0 {
		return nil, fmt.Errorf("growbuf: element size %d: %w", elemSize, chai.ErrInvalidElementSize)
	}
	if count < 0 {
		return nil, chai.OutOfRange(count, 0)
	}
	a := opts.Allocator
	if a == nil {
		a = alloc.Default()
	}
	b := &Buffer{elemSize: elemSize, alloc: a}
	if count == 0 {
		return b, nil
	}
	if err := b.setCapacity(CapacityFor(count)); err != nil {
		return nil, err
	}
	b.length = count
	return b, nil
}

// Clone returns an independent copy with the same capacity and allocator.
func (b *Buffer) Clone() (*Buffer, error) {
	c := &Buffer{elemSize: b.elemSize, alloc: b.alloc}
	if b.capacity == 0 {
		return c, nil
	}
	if err := c.setCapacity(b.capacity); err != nil {
		return nil, err
	}
	copy(c.items, b.items)
	c.length = b.length
	return c, nil
}

// Len is the number of valid elements.
func (b *Buffer) Len() int { return b.length }

// Cap is the number of elements the current block can hold.
func (b *Buffer) Cap() int { return b.capacity }

// ElemSize is the fixed element width in bytes.
func (b *Buffer) ElemSize() int { return b.elemSize }

// Allocator returns the allocator backing b.
func (b *Buffer) Allocator() alloc.Allocator { return b.alloc }

// Bytes aliases the bytes of the valid elements.
func (b *Buffer) Bytes() []byte {
	return b.items[:b.length*b.elemSize]
}

// Raw aliases the whole block, including the unused tail up to Cap.
func (b *Buffer) Raw() []byte {
	return b.items
}

// ElementAt aliases the bytes of element i. i may address any slot below Cap.
func (b *Buffer) ElementAt(i int) []byte {
	off := i * b.elemSize
	return b.items[off : off+b.elemSize : off+b.elemSize]
}

// Fill copies value into every valid element.
func (b *Buffer) Fill(value []byte) {
	for i := 0; i < b.length; i++ {
		copy(b.ElementAt(i), value)
	}
}

// Append adds value as the new last element.
func (b *Buffer) Append(value []byte) error {
	if err := b.grow(b.length + 1); err != nil {
		return err
	}
	b.length++
	copy(b.ElementAt(b.length-1), value)
	return nil
}

// Insert places value at i, moving elements i and above one slot up.
func (b *Buffer) Insert(i int, value []byte) error {
	if err := b.grow(b.length + 1); err != nil {
		return err
	}
	es := b.elemSize
	copy(b.items[(i+1)*es:(b.length+1)*es], b.items[i*es:b.length*es])
	b.length++
	copy(b.ElementAt(i), value)
	return nil
}

// Remove deletes element i, keeping the order of the rest.
func (b *Buffer) Remove(i int) {
	es := b.elemSize
	copy(b.items[i*es:], b.items[(i+1)*es:b.length*es])
	b.length--
}

// RemoveSwap deletes element i by moving the last element into its slot.
func (b *Buffer) RemoveSwap(i int) {
	last := b.length - 1
	if i != last {
		copy(b.ElementAt(i), b.ElementAt(last))
	}
	b.length--
}

// Resize sets the length to n. Growing zeroes the new elements; shrinking
// keeps the capacity.
func (b *Buffer) Resize(n int) error {
	if n < 0 {
		return chai.OutOfRange(n, b.length)
	}
	if n > b.length {
		if err := b.grow(n); err != nil {
			return err
		}
		clear(b.items[b.length*b.elemSize : n*b.elemSize])
	}
	b.length = n
	return nil
}

// Reserve makes room for additional elements past Len without changing it.
func (b *Buffer) Reserve(additional int) error {
	if additional < 0 {
		return chai.OutOfRange(additional, 0)
	}
	required, ok := common.AddOverflowSafe(b.length, additional)
	if !ok {
		return fmt.Errorf("growbuf: reserve %d: %w", additional, chai.ErrOutOfMemory)
	}
	return b.grow(required)
}

// Shrink reallocates down to CapacityFor(Len) when that is smaller than Cap.
func (b *Buffer) Shrink() error {
	if b.capacity == 0 {
		return nil
	}
	if target := CapacityFor(b.length); target < b.capacity {
		return b.setCapacity(target)
	}
	return nil
}

// Clear sets the length to 0.
func (b *Buffer) Clear() {
	b.length = 0
}

// Free releases the block and resets b to the empty state. The buffer can
// be grown again afterwards; calling Free twice is a no-op.
func (b *Buffer) Free() error {
	if b.items == nil {
		b.length, b.capacity = 0, 0
		return nil
	}
	err := b.alloc.Free(b.items)
	b.items = nil
	b.length, b.capacity = 0, 0
	return err
}

func (b *Buffer) grow(required int) error {
	if required <= b.capacity {
		return nil
	}
	return b.setCapacity(CapacityFor(required))
}

func (b *Buffer) setCapacity(capacity int) error {
	size, ok := common.MulOverflowSafe(capacity, b.elemSize)
	if !ok {
		return fmt.Errorf("growbuf: %d elements of %d bytes: %w", capacity, b.elemSize, chai.ErrOutOfMemory)
	}
	var (
		items []byte
		err   error
	)
	if b.items == nil {
		items, err = b.alloc.Alloc(size)
	} else {
		items, err = b.alloc.Realloc(b.items, size)
	}
	if err != nil {
		return err
	}
	if l := chai.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("growbuf realloc",
			slog.Int("from", b.capacity),
			slog.Int("to", capacity),
			slog.Int("elem_size", b.elemSize))
	}
	b.items = items
	b.capacity = capacity
	if b.length > capacity {
		b.length = capacity
	}
	return nil
}
