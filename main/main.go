package main

import (
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/rawbytedev/chai"
	"github.com/rawbytedev/chai/pkg/list"
	"github.com/rawbytedev/chai/pkg/text"
	"github.com/rawbytedev/chai/pkg/view"
)

// Memory profile harness: builds a CSV document in a text.String, scans it
// back with views into typed lists and writes a heap profile.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	chai.SetLogger(logger)

	go func() {
		logger.Info("pprof", "err", http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		logger.Error("create profile", "err", err)
		os.Exit(1)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	for i := 0; i < 10000; i++ {
		if err := roundTrip(64); err != nil {
			logger.Error("round trip", "iteration", i, "err", err)
			os.Exit(1)
		}
	}
	if err := pprof.WriteHeapProfile(f); err != nil {
		logger.Error("write profile", "err", err)
	}
	time.Sleep(5 * time.Minute)
}

func roundTrip(rows int) error {
	doc, err := text.Empty(rows * 16)
	if err != nil {
		return err
	}
	defer doc.Free()
	for r := 0; r < rows; r++ {
		row := strconv.Itoa(r) + "," + strconv.FormatFloat(float64(r)/4, 'f', 2, 64)
		if err := doc.AppendText(row); err != nil {
			return err
		}
		if err := doc.Append('\n'); err != nil {
			return err
		}
	}

	ids, err := list.Empty[int32](rows)
	if err != nil {
		return err
	}
	defer ids.Free()
	weights, err := list.Empty[float32](rows)
	if err != nil {
		return err
	}
	defer weights.Free()

	cursor := doc.View()
	for !cursor.IsEmpty() {
		line := cursor.SkipLine()
		id := line.SkipUntil(view.Of(","))
		if id.IsEmpty() {
			continue
		}
		id, err := view.Slice(id, 0, id.Len()-1)
		if err != nil {
			return err
		}
		if n, ok := id.ToInt(); ok {
			if err := ids.Append(int32(n)); err != nil {
				return err
			}
		}
		if w, ok := line.ToFloat32(); ok {
			if err := weights.Append(w); err != nil {
				return err
			}
		}
	}
	return nil
}
