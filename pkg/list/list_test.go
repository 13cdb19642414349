package list

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/chai"
	"github.com/rawbytedev/chai/pkg/alloc"
	"github.com/rawbytedev/chai/pkg/growbuf"
)

func TestAppendScenario(t *testing.T) {
	numbers, err := New[int32](0)
	require.NoError(t, err)
	for i := int32(0); i < 5; i++ {
		require.NoError(t, numbers.Append(i*25))
	}
	assert.Equal(t, 5, numbers.Len())
	assert.Equal(t, growbuf.StartCapacity, numbers.Cap())
	assert.Equal(t, []int32{0, 25, 50, 75, 100}, numbers.Items())

	numbers.Clear()
	for i := int32(0); i < 5; i++ {
		require.NoError(t, numbers.Append(i*75))
	}
	assert.Equal(t, []int32{0, 75, 150, 225, 300}, numbers.Items())

	require.NoError(t, numbers.Resize(33))
	require.NoError(t, numbers.Resize(32))
	require.NoError(t, numbers.Shrink())
	assert.Equal(t, 32, numbers.Cap())
	numbers.Fill(1)
	for _, v := range numbers.Items() {
		require.Equal(t, int32(1), v)
	}

	require.NoError(t, numbers.Resize(4))
	require.NoError(t, numbers.Insert(0, 0))
	assert.Equal(t, []int32{0, 1, 1, 1, 1}, numbers.Items())

	require.NoError(t, numbers.Remove(0))
	require.NoError(t, numbers.Resize(5))
	assert.Equal(t, []int32{1, 1, 1, 1, 0}, numbers.Items())
	require.NoError(t, numbers.Free())
}

func TestInsertAtFront(t *testing.T) {
	l, err := From[int32](7, 8, 9, 10)
	require.NoError(t, err)
	require.NoError(t, l.Insert(0, 0))
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, []int32{0, 7, 8, 9, 10}, l.Items())

	require.NoError(t, l.Insert(l.Len(), 11))
	assert.Equal(t, int32(11), l.At(5))
}

func TestBoundsChecks(t *testing.T) {
	l, err := From[float32](1.5, 2.5)
	require.NoError(t, err)

	_, err = l.Item(2)
	require.ErrorIs(t, err, chai.ErrIndexOutOfRange)
	_, err = l.Get(-1)
	require.ErrorIs(t, err, chai.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Set(5, 1), chai.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Insert(3, 1), chai.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Remove(2), chai.ErrIndexOutOfRange)
	require.ErrorIs(t, l.RemoveSwap(-1), chai.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Resize(-1), chai.ErrIndexOutOfRange)
	assert.Equal(t, []float32{1.5, 2.5}, l.Items())

	v, err := l.Get(1)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v)
	p, err := l.Item(0)
	require.NoError(t, err)
	*p = 9
	assert.Equal(t, float32(9), l.At(0))
}

func TestAtUsesAssertHook(t *testing.T) {
	var got string
	prev := chai.SetAssertHook(func(msg string) { got = msg })
	t.Cleanup(func() { chai.SetAssertHook(prev) })

	l, err := From[int64](1)
	require.NoError(t, err)
	assert.Zero(t, l.At(3))
	assert.Equal(t, "index out of range", got)
}

func TestAtPanicsByDefault(t *testing.T) {
	l, err := From[int64](1)
	require.NoError(t, err)
	require.PanicsWithValue(t, "chai: index out of range", func() { l.At(1) })
}

func TestRemoveOrder(t *testing.T) {
	l, err := From[uint16](1, 2, 3, 4, 5)
	require.NoError(t, err)
	require.NoError(t, l.Remove(1))
	assert.Equal(t, []uint16{1, 3, 4, 5}, l.Items())
	require.NoError(t, l.RemoveSwap(0))
	assert.Equal(t, []uint16{5, 3, 4}, l.Items())
}

func TestRemoveProperties(t *testing.T) {
	keepsOrder := func(items []int32, at uint8) bool {
		if len(items) == 0 {
			return true
		}
		i := int(at) % len(items)
		l, err := From(items...)
		require.NoError(t, err)
		require.NoError(t, l.Remove(i))
		want := append(append([]int32{}, items[:i]...), items[i+1:]...)
		return assert.ObjectsAreEqual(want, append([]int32{}, l.Items()...))
	}
	require.NoError(t, quick.Check(keepsOrder, nil))

	swapCount := func(items []int32, at uint8) bool {
		if len(items) == 0 {
			return true
		}
		i := int(at) % len(items)
		l, err := From(items...)
		require.NoError(t, err)
		require.NoError(t, l.RemoveSwap(i))
		if l.Len() != len(items)-1 {
			return false
		}
		return i == len(items)-1 || l.At(i) == items[len(items)-1]
	}
	require.NoError(t, quick.Check(swapCount, nil))
}

func TestAppendRetainsValues(t *testing.T) {
	condition := func(items []int64) bool {
		l, err := New[int64](0)
		require.NoError(t, err)
		for _, v := range items {
			require.NoError(t, l.Append(v))
		}
		if l.Len() != len(items) {
			return false
		}
		for i, v := range items {
			if l.At(i) != v {
				return false
			}
		}
		return l.Cap() >= l.Len()
	}
	require.NoError(t, quick.Check(condition, nil))
}

func TestCloneIsIndependent(t *testing.T) {
	l, err := From[int32](1, 2, 3)
	require.NoError(t, err)
	c, err := l.Clone()
	require.NoError(t, err)
	require.NoError(t, c.Append(4))
	require.NoError(t, c.Set(0, 100))

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int32{1, 2, 3}, l.Items())
	assert.Equal(t, []int32{100, 2, 3, 4}, c.Items())
}

func TestZeroValueAndEmpty(t *testing.T) {
	var l I32
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Items())
	require.NoError(t, l.Append(3))
	assert.Equal(t, []int32{3}, l.Items())

	e, err := Empty[float64](0)
	require.NoError(t, err)
	assert.Zero(t, e.Len())
	assert.Equal(t, growbuf.StartCapacity, e.Cap())

	e, err = Empty[float64](40)
	require.NoError(t, err)
	assert.Equal(t, 64, e.Cap())
}

func TestFreeIsIdempotent(t *testing.T) {
	l, err := New[uint8](3)
	require.NoError(t, err)
	require.NoError(t, l.Free())
	require.NoError(t, l.Free())
	assert.Zero(t, l.Len())
	assert.Zero(t, l.Cap())
	require.NoError(t, l.Append(1))
	assert.Equal(t, []uint8{1}, l.Items())
}

func TestMmapBackedList(t *testing.T) {
	m, err := alloc.NewMmap()
	if err != nil {
		t.Skip("mmap allocator unavailable")
	}
	l, err := NewWith[float64](0, growbuf.Options{Allocator: m})
	require.NoError(t, err)
	for i := 0; i < 500; i++ {
		require.NoError(t, l.Append(float64(i)/2))
	}
	assert.Equal(t, 249.5, l.At(499))
	require.NoError(t, l.Free())
}

func TestAppendSliceOwnItems(t *testing.T) {
	allocators := map[string]alloc.Allocator{"heap": alloc.Heap{}}
	if m, err := alloc.NewMmap(); err == nil {
		allocators["mmap"] = m
	}
	for name, a := range allocators {
		t.Run(name, func(t *testing.T) {
			l, err := NewWith[int32](0, growbuf.Options{Allocator: a})
			require.NoError(t, err)
			n := growbuf.StartCapacity
			for i := 0; i < n; i++ {
				require.NoError(t, l.Append(int32(i)))
			}
			// full list, so the append has to move the block
			require.NoError(t, l.AppendSlice(l.Items()...))
			require.Equal(t, 2*n, l.Len())
			for i := 0; i < n; i++ {
				assert.Equal(t, int32(i), l.At(i))
				assert.Equal(t, int32(i), l.At(n+i))
			}
			require.NoError(t, l.AppendSlice(l.Items()[1:3]...))
			assert.Equal(t, []int32{1, 2}, l.Items()[2*n:])
			require.NoError(t, l.Free())
		})
	}
}

func BenchmarkListAppend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l, _ := New[int32](0)
		for j := int32(0); j < 1024; j++ {
			_ = l.Append(j)
		}
	}
}

func BenchmarkListInsertFront(b *testing.B) {
	l, _ := New[int32](0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Insert(0, int32(i))
		if l.Len() > 4096 {
			l.Clear()
		}
	}
}
