// Package list provides List, a typed growable collection of fixed-width
// numbers built on the growbuf engine.
//
// Unlike the engine, every index-taking method is checked and fails with
// chai.ErrIndexOutOfRange. Slices and pointers obtained from Items or Item
// alias the backing block and are invalidated by any growth of the list.
package list

import (
	"slices"
	"unsafe"

	"github.com/rawbytedev/chai"
	"github.com/rawbytedev/chai/internal/common"
	"github.com/rawbytedev/chai/pkg/growbuf"
)

// Scalar is the set of element types a List can hold: fixed-width numbers
// without pointers, so the backing block may live outside the Go heap.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// List is a growable sequence of T. The zero value is an empty list ready to use.
type List[T Scalar] struct {
	buf *growbuf.Buffer
}

// I32 and F32 are the common instantiations.
type (
	I32 = List[int32]
	F32 = List[float32]
)

func sizeOf[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// New returns a list of count zero values.
func New[T Scalar](count int) (*List[T], error) {
	return NewWith[T](count, growbuf.Options{})
}

// NewWith is New with an explicit allocator.
func NewWith[T Scalar](count int, opts growbuf.Options) (*List[T], error) {
	buf, err := growbuf.NewWith(count, sizeOf[T](), opts)
	if err != nil {
		return nil, err
	}
	return &List[T]{buf: buf}, nil
}

// Empty returns an allocated list of length 0 with room for capacityHint items.
func Empty[T Scalar](capacityHint int) (*List[T], error) {
	l, err := New[T](0)
	if err != nil {
		return nil, err
	}
	if err := l.Reserve(max(capacityHint, 1)); err != nil {
		return nil, err
	}
	return l, nil
}

// From returns a list holding a copy of items.
func From[T Scalar](items ...T) (*List[T], error) {
	l, err := New[T](0)
	if err != nil {
		return nil, err
	}
	if err := l.AppendSlice(items...); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *List[T]) engine() *growbuf.Buffer {
	if l.buf == nil {
		// cannot fail: count is 0 and the element size is positive
		l.buf, _ = growbuf.New(0, sizeOf[T]())
	}
	return l.buf
}

// Clone returns an independent copy of l.
func (l *List[T]) Clone() (*List[T], error) {
	buf, err := l.engine().Clone()
	if err != nil {
		return nil, err
	}
	return &List[T]{buf: buf}, nil
}

func (l *List[T]) Len() int { return l.engine().Len() }

func (l *List[T]) Cap() int { return l.engine().Cap() }

// Items aliases the valid elements.
func (l *List[T]) Items() []T {
	b := l.engine()
	return common.AsSlice[T](b.Raw(), b.Len())
}

// Bytes aliases the valid elements as raw bytes in host order.
func (l *List[T]) Bytes() []byte {
	return l.engine().Bytes()
}

// Item returns a pointer to element i.
func (l *List[T]) Item(i int) (*T, error) {
	if i < 0 || i >= l.Len() {
		return nil, chai.OutOfRange(i, l.Len())
	}
	return &l.Items()[i], nil
}

// Get returns element i.
func (l *List[T]) Get(i int) (T, error) {
	p, err := l.Item(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// At returns element i, reporting an out of range index through the
// assertion hook. If the hook returns, At yields the zero value.
func (l *List[T]) At(i int) T {
	ok := i >= 0 && i < l.Len()
	chai.Assert(ok, "index out of range")
	if !ok {
		var zero T
		return zero
	}
	return l.Items()[i]
}

// Set overwrites element i.
func (l *List[T]) Set(i int, v T) error {
	p, err := l.Item(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Fill sets every element to v.
func (l *List[T]) Fill(v T) {
	l.engine().Fill(common.AsBytes(&v))
}

func (l *List[T]) Append(v T) error {
	return l.engine().Append(common.AsBytes(&v))
}

// AppendSlice appends vs in order, growing at most once. vs may alias l.
func (l *List[T]) AppendSlice(vs ...T) error {
	b := l.engine()
	if common.Overlaps(b.Raw(), common.SliceBytes(vs)) {
		// growth may release the block vs points into
		vs = slices.Clone(vs)
	}
	if err := b.Reserve(len(vs)); err != nil {
		return err
	}
	for i := range vs {
		if err := l.buf.Append(common.AsBytes(&vs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Insert places v at i. i may equal Len, which appends.
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > l.Len() {
		return chai.OutOfRange(i, l.Len())
	}
	return l.buf.Insert(i, common.AsBytes(&v))
}

// Remove deletes element i, preserving order.
func (l *List[T]) Remove(i int) error {
	if i < 0 || i >= l.Len() {
		return chai.OutOfRange(i, l.Len())
	}
	l.buf.Remove(i)
	return nil
}

// RemoveSwap deletes element i in O(1) by moving the last element into
// its place. Order is not preserved.
func (l *List[T]) RemoveSwap(i int) error {
	if i < 0 || i >= l.Len() {
		return chai.OutOfRange(i, l.Len())
	}
	l.buf.RemoveSwap(i)
	return nil
}

// Resize sets the length to n; new elements are zero.
func (l *List[T]) Resize(n int) error {
	return l.engine().Resize(n)
}

// Reserve makes room for additional elements beyond Len.
func (l *List[T]) Reserve(additional int) error {
	return l.engine().Reserve(additional)
}

// Shrink releases unused capacity down to the policy minimum for Len.
func (l *List[T]) Shrink() error {
	return l.engine().Shrink()
}

func (l *List[T]) Clear() {
	l.engine().Clear()
}

// Free releases the backing block. The list stays usable and empty.
func (l *List[T]) Free() error {
	return l.engine().Free()
}
