package alloc

import (
	"unsafe"

	"github.com/rawbytedev/chai/internal/common"
)

// MaxHeapBlock bounds a single heap block. Larger requests fail with
// chai.ErrOutOfMemory instead of panicking inside the runtime.
const MaxHeapBlock = 1 << 40

// Heap allocates from the Go heap. Blocks are 8-byte aligned so any scalar
// element type can be aliased over them. Free is a no-op; the collector
// reclaims blocks once unreferenced.
type Heap struct{}

func (Heap) Alloc(size int) ([]byte, error) {
	if size < 0 || size > MaxHeapBlock {
		return nil, outOfMemory(size)
	}
	if size == 0 {
		return nil, nil
	}
	padded, ok := common.AddOverflowSafe(size, 7)
	if !ok {
		return nil, outOfMemory(size)
	}
	w := make([]uint64, padded/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(&w[0])), size), nil
}

func (h Heap) Realloc(b []byte, size int) ([]byte, error) {
	nb, err := h.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(nb, b)
	return nb, nil
}

func (Heap) Free([]byte) error { return nil }
