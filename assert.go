package chai

import (
	"log/slog"
	"sync/atomic"
)

// AssertHook receives the diagnostic of a failed check. A hook that returns
// lets the caller continue with a zero value.
type AssertHook func(msg string)

var assertHook atomic.Pointer[AssertHook]

func defaultAssertHook(msg string) {
	Logger().Error("assertion failed", slog.String("check", msg))
	panic("chai: " + msg)
}

// SetAssertHook installs h as the global assertion hook and returns the previous one.
// A nil h restores the default, which logs and panics.
func SetAssertHook(h AssertHook) AssertHook {
	var prev AssertHook = defaultAssertHook
	if p := assertHook.Load(); p != nil {
		prev = *p
	}
	if h == nil {
		assertHook.Store(nil)
	} else {
		assertHook.Store(&h)
	}
	return prev
}

// Assert calls the installed hook with msg when cond is false.
func Assert(cond bool, msg string) {
	if cond {
		return
	}
	if p := assertHook.Load(); p != nil {
		(*p)(msg)
		return
	}
	defaultAssertHook(msg)
}
