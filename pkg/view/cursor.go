package view

import (
	"bytes"

	"github.com/rawbytedev/chai/pkg/ascii"
)

// The cursor methods consume a prefix of v and return it. When nothing
// matches they return an empty View and leave v where it was.

func (v *View) advance(n int) View {
	consumed := View{items: v.items[:n:n]}
	v.items = v.items[n:]
	return consumed
}

// SkipOver consumes content if v starts with it.
func (v *View) SkipOver(content View) View {
	if len(content.items) == 0 || !v.StartsWith(content) {
		return View{}
	}
	return v.advance(len(content.items))
}

// SkipUntil consumes everything up to and including the first occurrence of
// content. If content does not occur, v is unchanged.
func (v *View) SkipUntil(content View) View {
	i := v.FindLeft(content)
	if i < 0 {
		return View{}
	}
	return v.advance(i + len(content.items))
}

// SkipLine returns the bytes before the next '\n', or the rest of v when
// there is none, and moves past the delimiter.
func (v *View) SkipLine() View {
	i := bytes.IndexByte(v.items, '\n')
	if i < 0 {
		return v.advance(len(v.items))
	}
	line := v.advance(i)
	v.items = v.items[1:]
	return line
}

// SkipArg returns the next whitespace separated argument. Leading whitespace
// is dropped and one delimiter after the argument is consumed.
func (v *View) SkipArg() View {
	*v = v.TrimLeft()
	n := 0
	for n < len(v.items) && !ascii.IsSpace(v.items[n]) {
		n++
	}
	arg := v.advance(n)
	if len(v.items) > 0 {
		v.items = v.items[1:]
	}
	return arg
}
