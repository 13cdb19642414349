package chai

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// logger discards everything until SetLogger is called.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Logger returns the library logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger routes library diagnostics to l. A nil l discards them again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Store(l)
}
