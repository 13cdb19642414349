//go:build !unix

package alloc

// Mmap is unavailable on this platform.
type Mmap struct{}

// NewMmap always fails with ErrUnsupported here.
func NewMmap() (*Mmap, error) {
	return nil, ErrUnsupported
}

func (m *Mmap) PageSize() int { return 0 }

func (m *Mmap) Alloc(int) ([]byte, error) { return nil, ErrUnsupported }

func (m *Mmap) Realloc([]byte, int) ([]byte, error) { return nil, ErrUnsupported }

func (m *Mmap) Free([]byte) error { return ErrUnsupported }
