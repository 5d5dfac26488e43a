// Package debug provides toggleable, timestamped tracing for matcher
// operations. It is a thin wrapper over the standard logger: nothing is
// printed unless the caller's Config.Trace is true, so it costs nothing in
// the common (non-traced) path.
package debug

import (
	"fmt"
	"log"
	"time"
)

// Output logs a formatted trace line when enabled, prefixed with a
// millisecond timestamp.
func Output(enabled bool, format string, args ...interface{}) {
	if !enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	log.Printf("[%s] %s", timestamp, fmt.Sprintf(format, args...))
}

// Span logs the start of an operation and returns a closer that logs its
// duration. Call it as `defer debug.Span(trace, "op")()` so the closing
// line fires on every return path, including early ones.
func Span(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}
	start := time.Now()
	Output(enabled, "start: %s", operation)
	return func() {
		Output(enabled, "done: %s (%v)", operation, time.Since(start))
	}
}
