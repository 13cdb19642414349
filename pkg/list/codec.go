package list

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/chai/internal/common"
)

var (
	ErrKindMismatch = errors.New("list: element kind mismatch")
	ErrShortBuffer  = errors.New("list: short buffer")
	ErrTrailingData = errors.New("list: trailing data")
	ErrOverflow     = errors.New("list: value overflows element type")
)

// Binary layout:
//   kind:  1 byte, reflect.Kind of T
//   count: varint
//   items: count fixed-width little-endian values
//
// int, uint and uintptr are always written as 8 bytes so the encoding does
// not depend on the host word size.

func elemKind[T Scalar]() reflect.Kind {
	return reflect.TypeOf((*T)(nil)).Elem().Kind()
}

// isWord reports the kinds whose size follows the host word size.
func isWord(k reflect.Kind) bool {
	return k == reflect.Int || k == reflect.Uint || k == reflect.Uintptr
}

func wireWidth(k reflect.Kind) int {
	if isWord(k) {
		return 8
	}
	return common.FixedSize(k)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (l *List[T]) MarshalBinary() ([]byte, error) {
	size := 1 + binaryVarintMax + l.Len()*wireWidth(elemKind[T]())
	return l.AppendBinary(make([]byte, 0, size))
}

const binaryVarintMax = 10

// AppendBinary appends the encoded list to dst.
func (l *List[T]) AppendBinary(dst []byte) ([]byte, error) {
	k := elemKind[T]()
	dst = append(dst, byte(k))
	dst = common.WriteVarUint(dst, uint64(l.Len()))
	switch k {
	case reflect.Int:
		for _, v := range l.Items() {
			dst = binary.LittleEndian.AppendUint64(dst, uint64(int64(v)))
		}
	case reflect.Uint, reflect.Uintptr:
		for _, v := range l.Items() {
			dst = binary.LittleEndian.AppendUint64(dst, uint64(v))
		}
	default:
		w := common.FixedSize(k)
		raw := l.Bytes()
		for off := 0; off < len(raw); off += w {
			dst = common.AppendFixedLE(dst, raw[off:off+w], w)
		}
	}
	return dst, nil
}

// decodeWord reads an 8-byte int, uint or uintptr item; ok is false when
// the value does not fit in T.
func decodeWord[T Scalar](k reflect.Kind, p []byte) (v T, ok bool) {
	x := binary.LittleEndian.Uint64(p)
	if k == reflect.Int {
		v = T(int64(x))
		return v, int64(v) == int64(x)
	}
	v = T(x)
	return v, uint64(v) == x
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The list is
// replaced by the decoded items; on error it is left unchanged.
func (l *List[T]) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return ErrShortBuffer
	}
	k := elemKind[T]()
	got := reflect.Kind(data[0])
	if !common.IsFixedKind(got) {
		return fmt.Errorf("%w: kind %d has no fixed width", ErrKindMismatch, data[0])
	}
	if got != k {
		return fmt.Errorf("%w: got %s, want %s", ErrKindMismatch, got, k)
	}
	n, m := common.ReadVarUint(data[1:])
	if m == 0 || n > math.MaxInt {
		return ErrShortBuffer
	}
	w := wireWidth(k)
	body := data[1+m:]
	total, ok := common.MulOverflowSafe(int(n), w)
	if !ok || len(body) < total {
		return fmt.Errorf("%w: need %d bytes for %d items, have %d", ErrShortBuffer, total, n, len(body))
	}
	if len(body) > total {
		return fmt.Errorf("%w: %d bytes after %d items", ErrTrailingData, len(body)-total, n)
	}
	word := isWord(k)
	if word && sizeOf[T]() < 8 {
		for i := 0; i < int(n); i++ {
			if _, ok := decodeWord[T](k, body[i*8:]); !ok {
				return fmt.Errorf("%w: item %d", ErrOverflow, i)
			}
		}
	}
	if err := l.Resize(int(n)); err != nil {
		return err
	}
	if word {
		items := l.Items()
		for i := range items {
			items[i], _ = decodeWord[T](k, body[i*8:])
		}
		return nil
	}
	for i := 0; i < int(n); i++ {
		common.ReadFixedLE(l.buf.ElementAt(i), body[i*w:], w)
	}
	return nil
}

// MarshalYAML encodes the list as a YAML sequence.
func (l *List[T]) MarshalYAML() (any, error) {
	out := make([]T, l.Len())
	copy(out, l.Items())
	return out, nil
}

// UnmarshalYAML replaces the list contents with a decoded YAML sequence.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	l.Clear()
	return l.AppendSlice(items...)
}
