// Package chai is a small foundation library over contiguous memory.
//
// It provides a growable buffer engine (pkg/growbuf), a typed collection built
// on it (pkg/list), a terminated text buffer (pkg/text) and a non-owning view
// with zero-copy scanning (pkg/view). This root package holds the shared error
// values, the assertion hook used by panicking accessors and the library logger.
//
// A View taken over a list or text buffer is only valid until the next mutation
// that can reallocate the owner: append past capacity, insert, growing resize,
// shrink or free. Nothing checks this at runtime.
package chai
