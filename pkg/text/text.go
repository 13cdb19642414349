// Package text implements String, a growable byte string that keeps a 0
// terminator just past its logical length.
//
// The terminator lives in the growbuf block at offset Len() and is never
// counted. Every mutator makes room for it before changing the payload, so
// the invariant holds on every return path, including allocation failures.
package text

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/chai"
	"github.com/rawbytedev/chai/internal/common"
	"github.com/rawbytedev/chai/pkg/growbuf"
	"github.com/rawbytedev/chai/pkg/view"
)

// String is a terminated, growable byte string. The zero value is empty and
// ready to use.
type String struct {
	buf *growbuf.Buffer
}

// New returns a string of length zero bytes.
func New(length int) (*String, error) {
	return NewWith(length, growbuf.Options{})
}

// NewWith is New with an explicit allocator.
func NewWith(length int, opts growbuf.Options) (*String, error) {
	buf, err := growbuf.NewWith(length, 1, opts)
	if err != nil {
		return nil, err
	}
	s := &String{buf: buf}
	if err := s.seal(); err != nil {
		return nil, err
	}
	return s, nil
}

// Empty returns an allocated empty string with room for capacityHint bytes.
func Empty(capacityHint int) (*String, error) {
	s, err := New(0)
	if err != nil {
		return nil, err
	}
	if err := s.Reserve(capacityHint); err != nil {
		return nil, err
	}
	return s, nil
}

// FromText returns a new String holding a copy of str.
func FromText(str string) (*String, error) {
	return FromBytes(common.StringBytes(str))
}

// FromBytes returns a new String holding a copy of b.
func FromBytes(b []byte) (*String, error) {
	s, err := Empty(len(b))
	if err != nil {
		return nil, err
	}
	if err := s.AppendBytes(b); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *String) engine() *growbuf.Buffer {
	if s.buf == nil {
		s.buf, _ = growbuf.New(0, 1)
	}
	return s.buf
}

// seal writes the terminator at Len, allocating only if no block exists yet.
func (s *String) seal() error {
	b := s.engine()
	if err := b.Reserve(1); err != nil {
		return err
	}
	b.ElementAt(b.Len())[0] = 0
	return nil
}

// room makes space for n more payload bytes plus the terminator.
func (s *String) room(n int) error {
	if n < 0 {
		return chai.OutOfRange(n, 0)
	}
	total, ok := common.AddOverflowSafe(n, 1)
	if !ok {
		return fmt.Errorf("text: reserve %d: %w", n, chai.ErrOutOfMemory)
	}
	return s.engine().Reserve(total)
}

// Clone returns an independent copy.
func (s *String) Clone() (*String, error) {
	buf, err := s.engine().Clone()
	if err != nil {
		return nil, err
	}
	c := &String{buf: buf}
	if err := c.seal(); err != nil {
		return nil, err
	}
	return c, nil
}

// Len is the payload length, terminator excluded.
func (s *String) Len() int { return s.engine().Len() }

// Cap is the size of the backing block, terminator slot included.
func (s *String) Cap() int { return s.engine().Cap() }

// Bytes aliases the payload.
func (s *String) Bytes() []byte { return s.engine().Bytes() }

// CString aliases the payload followed by its terminator.
func (s *String) CString() []byte {
	b := s.engine()
	if b.Cap() == 0 {
		return []byte{0}
	}
	return b.Raw()[:b.Len()+1]
}

// String copies the payload.
func (s *String) String() string { return string(s.Bytes()) }

// View returns a view over the whole payload.
func (s *String) View() view.View { return view.OfBytes(s.Bytes()) }

// Slice returns a view over payload bytes [start, end).
func (s *String) Slice(start, end int) (view.View, error) {
	return view.FromBytes(s.Bytes(), start, end)
}

// Item returns a pointer to payload byte i.
func (s *String) Item(i int) (*byte, error) {
	if i < 0 || i >= s.Len() {
		return nil, chai.OutOfRange(i, s.Len())
	}
	return &s.buf.ElementAt(i)[0], nil
}

// At returns payload byte i, reporting an out of range index through the
// assertion hook.
func (s *String) At(i int) byte {
	ok := i >= 0 && i < s.Len()
	chai.Assert(ok, "index out of range")
	if !ok {
		return 0
	}
	return s.buf.ElementAt(i)[0]
}

// Fill overwrites every payload byte with c.
func (s *String) Fill(c byte) {
	s.engine().Fill([]byte{c})
}

func (s *String) Append(c byte) error {
	if err := s.room(1); err != nil {
		return err
	}
	if err := s.buf.Append([]byte{c}); err != nil {
		return err
	}
	return s.seal()
}

// AppendText appends the bytes of str.
func (s *String) AppendText(str string) error {
	return s.AppendBytes(common.StringBytes(str))
}

// AppendBytes appends b. b may alias s.
func (s *String) AppendBytes(b []byte) error {
	return s.InsertBytes(s.Len(), b)
}

// Insert places c at i, shifting the rest of the payload and the terminator.
func (s *String) Insert(i int, c byte) error {
	if i < 0 || i > s.Len() {
		return chai.OutOfRange(i, s.Len())
	}
	if err := s.room(1); err != nil {
		return err
	}
	if err := s.buf.Insert(i, []byte{c}); err != nil {
		return err
	}
	return s.seal()
}

// InsertText inserts the bytes of str at i.
func (s *String) InsertText(i int, str string) error {
	return s.InsertBytes(i, common.StringBytes(str))
}

// InsertBytes inserts b at i. b may alias s.
func (s *String) InsertBytes(i int, b []byte) error {
	n := s.Len()
	if i < 0 || i > n {
		return chai.OutOfRange(i, n)
	}
	if common.Overlaps(s.buf.Raw(), b) {
		b = bytes.Clone(b)
	}
	if err := s.room(len(b)); err != nil {
		return err
	}
	if len(b) == 0 {
		return s.seal()
	}
	if err := s.buf.Resize(n + len(b)); err != nil {
		return err
	}
	raw := s.buf.Raw()
	copy(raw[i+len(b):n+len(b)], raw[i:n])
	copy(raw[i:], b)
	return s.seal()
}

// Remove deletes payload byte i.
func (s *String) Remove(i int) error {
	if i < 0 || i >= s.Len() {
		return chai.OutOfRange(i, s.Len())
	}
	s.buf.Remove(i)
	return s.seal()
}

// RemoveSwap deletes payload byte i by moving the last byte into its place.
func (s *String) RemoveSwap(i int) error {
	if i < 0 || i >= s.Len() {
		return chai.OutOfRange(i, s.Len())
	}
	s.buf.RemoveSwap(i)
	return s.seal()
}

// Resize sets the payload length to n. New bytes are zero.
func (s *String) Resize(n int) error {
	if n < 0 {
		return chai.OutOfRange(n, s.Len())
	}
	if n > s.Len() {
		if err := s.room(n - s.Len()); err != nil {
			return err
		}
	}
	if err := s.buf.Resize(n); err != nil {
		return err
	}
	return s.seal()
}

// Reserve makes room for additional payload bytes past Len.
func (s *String) Reserve(additional int) error {
	if err := s.room(additional); err != nil {
		return err
	}
	return s.seal()
}

// Shrink releases unused capacity, keeping the terminator slot.
func (s *String) Shrink() error {
	b := s.engine()
	if b.Cap() == 0 {
		return nil
	}
	n := b.Len()
	// count the terminator as an element so the engine keeps its slot
	if err := b.Resize(n + 1); err != nil {
		return err
	}
	err := b.Shrink()
	if rerr := b.Resize(n); err == nil {
		err = rerr
	}
	return err
}

// Clear drops the payload, leaving only the terminator.
func (s *String) Clear() {
	b := s.engine()
	b.Clear()
	if b.Cap() > 0 {
		b.ElementAt(0)[0] = 0
	}
}

// Free releases the backing block. The String stays usable and empty.
func (s *String) Free() error {
	return s.engine().Free()
}

// MarshalYAML encodes the payload as a YAML string.
func (s *String) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML replaces the payload with a decoded YAML string.
func (s *String) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return fmt.Errorf("text: %w", err)
	}
	s.Clear()
	return s.AppendText(str)
}
