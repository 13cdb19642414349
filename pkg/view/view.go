// Package view provides View, a non-owning window over a contiguous byte
// range with zero-copy scanning.
//
// A View never allocates and never frees. It reads bytes owned by a
// text.String, a list, a Go string or any other slice, and stays valid only
// while that storage does: a View over a buffer must not be used after the
// buffer reallocates (append past capacity, insert, growing resize, shrink,
// free). Cursor methods move the View's own bounds; they never write to the
// storage underneath.
package view

import (
	"bytes"
	"fmt"

	"github.com/rawbytedev/chai"
	"github.com/rawbytedev/chai/internal/common"
	"github.com/rawbytedev/chai/pkg/ascii"
	"github.com/rawbytedev/chai/pkg/parse"
)

// View is a read-only (pointer, count) pair. The zero value is an empty view.
type View struct {
	items []byte
}

// Of views the bytes of s without copying.
func Of(s string) View {
	return View{items: common.StringBytes(s)}
}

// OfBytes views all of b.
func OfBytes(b []byte) View {
	return View{items: b[:len(b):len(b)]}
}

// OfCString views b up to, not including, its first 0 byte. Without a 0 byte
// the whole slice is viewed.
func OfCString(b []byte) View {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return OfBytes(b)
}

// FromBytes views b[start:end].
func FromBytes(b []byte, start, end int) (View, error) {
	if start < 0 || start > end || end > len(b) {
		return View{}, chai.RangeOutOfBounds(start, end, len(b))
	}
	return View{items: b[start:end:end]}, nil
}

// Slice returns the sub-view source[start:end].
func Slice(source View, start, end int) (View, error) {
	return FromBytes(source.items, start, end)
}

func (v View) Len() int { return len(v.items) }

func (v View) IsEmpty() bool { return len(v.items) == 0 }

// Bytes aliases the viewed bytes. They must not be modified.
func (v View) Bytes() []byte { return v.items }

// String copies the viewed bytes into a new string.
func (v View) String() string { return string(v.items) }

// Item returns byte i.
func (v View) Item(i int) (byte, error) {
	if i < 0 || i >= len(v.items) {
		return 0, chai.OutOfRange(i, len(v.items))
	}
	return v.items[i], nil
}

// At returns byte i, reporting an out of range index through the assertion hook.
func (v View) At(i int) byte {
	ok := i >= 0 && i < len(v.items)
	chai.Assert(ok, "index out of range")
	if !ok {
		return 0
	}
	return v.items[i]
}

// Equals compares byte for byte.
func (v View) Equals(other View) bool {
	return bytes.Equal(v.items, other.items)
}

// EqualsIgnoreCase compares with ASCII case folding.
func (v View) EqualsIgnoreCase(other View) bool {
	if len(v.items) != len(other.items) {
		return false
	}
	for i, c := range v.items {
		if ascii.ToLower(c) != ascii.ToLower(other.items[i]) {
			return false
		}
	}
	return true
}

func (v View) StartsWith(prefix View) bool {
	return bytes.HasPrefix(v.items, prefix.items)
}

func (v View) EndsWith(suffix View) bool {
	return bytes.HasSuffix(v.items, suffix.items)
}

// Count returns the number of non-overlapping occurrences of needle, scanning
// left to right. An empty needle counts 0.
func (v View) Count(needle View) int {
	if len(needle.items) == 0 {
		return 0
	}
	return bytes.Count(v.items, needle.items)
}

// FindLeft returns the offset of the first occurrence of needle, or -1.
// An empty needle or one longer than v is never found.
func (v View) FindLeft(needle View) int {
	if len(needle.items) == 0 || len(needle.items) > len(v.items) {
		return -1
	}
	return bytes.Index(v.items, needle.items)
}

// FindRight returns the offset of the last occurrence of needle, or -1.
func (v View) FindRight(needle View) int {
	if len(needle.items) == 0 || len(needle.items) > len(v.items) {
		return -1
	}
	return bytes.LastIndex(v.items, needle.items)
}

// Contains reports whether needle occurs in v.
func (v View) Contains(needle View) bool {
	return v.FindLeft(needle) >= 0
}

// TrimLeft drops leading ASCII whitespace.
func (v View) TrimLeft() View {
	i := 0
	for i < len(v.items) && ascii.IsSpace(v.items[i]) {
		i++
	}
	return View{items: v.items[i:]}
}

// TrimRight drops trailing ASCII whitespace.
func (v View) TrimRight() View {
	n := len(v.items)
	for n > 0 && ascii.IsSpace(v.items[n-1]) {
		n--
	}
	return View{items: v.items[:n:n]}
}

// Trim drops ASCII whitespace at both ends.
func (v View) Trim() View {
	return v.TrimLeft().TrimRight()
}

// ToCString copies the view into dst followed by a 0 byte. dst must hold at
// least Len()+1 bytes.
func (v View) ToCString(dst []byte) error {
	if len(dst) < len(v.items)+1 {
		return fmt.Errorf("view: need %d bytes, have %d: %w", len(v.items)+1, len(dst), chai.ErrBufferTooSmall)
	}
	n := copy(dst, v.items)
	dst[n] = 0
	return nil
}

// ToInt parses the view as a signed decimal integer.
func (v View) ToInt() (int64, bool) {
	return parse.Int(v.items)
}

// ToFloat parses the view as a decimal floating-point number.
func (v View) ToFloat() (float64, bool) {
	return parse.Float(v.items)
}

// ToFloat32 parses the view as a single precision number.
func (v View) ToFloat32() (float32, bool) {
	return parse.Float32(v.items)
}
