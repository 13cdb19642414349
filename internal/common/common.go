package common

import (
	"encoding/binary"
	"math"
	"reflect"
	"unsafe"
)

// IsFixedKind reports whether k is a fixed-size numeric kind.
func IsFixedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-size kinds, -1 otherwise.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return int(unsafe.Sizeof(uintptr(0)))
	default:
		return -1
	}
}

// WriteVarUint appends a varint to buf.
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
// n is 0 when b ends before the varint does.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false on overflow
// or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// AsSlice aliases b as n values of T without copying. b must hold at least
// n*sizeof(T) bytes and be suitably aligned; T must not contain pointers.
func AsSlice[T any](b []byte, n int) []T {
	if n == 0 || len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AsBytes aliases the memory of *v as bytes.
func AsBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// SliceBytes aliases the memory of s as bytes.
func SliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// Overlaps reports whether a and b share any byte of memory.
func Overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}

// StringBytes aliases the bytes of s. The result must not be written to.
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesString aliases b as a string. b must not change while the string is live.
func BytesString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// AppendFixedLE appends the native-order value in src (width bytes) to dst in
// little-endian order.
func AppendFixedLE(dst, src []byte, width int) []byte {
	switch width {
	case 1:
		return append(dst, src[0])
	case 2:
		return binary.LittleEndian.AppendUint16(dst, *(*uint16)(unsafe.Pointer(&src[0])))
	case 4:
		return binary.LittleEndian.AppendUint32(dst, *(*uint32)(unsafe.Pointer(&src[0])))
	case 8:
		return binary.LittleEndian.AppendUint64(dst, *(*uint64)(unsafe.Pointer(&src[0])))
	default:
		panic("not fixed")
	}
}

// ReadFixedLE decodes a little-endian value of width bytes from src into the
// native-order slot dst.
func ReadFixedLE(dst, src []byte, width int) {
	switch width {
	case 1:
		dst[0] = src[0]
	case 2:
		*(*uint16)(unsafe.Pointer(&dst[0])) = binary.LittleEndian.Uint16(src)
	case 4:
		*(*uint32)(unsafe.Pointer(&dst[0])) = binary.LittleEndian.Uint32(src)
	case 8:
		*(*uint64)(unsafe.Pointer(&dst[0])) = binary.LittleEndian.Uint64(src)
	default:
		panic("not fixed")
	}
}
