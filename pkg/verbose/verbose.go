// Package verbose provides debug logging for filter passes.
//
// Messages carry a "[DEBUG] " prefix and are dropped unless Enable has been
// called, which the CLI does for --verbose.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const prefix = "[DEBUG] "

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter redirects verbose messages and returns a function restoring the
// previous writer.
//
// Parameters:
//   - w: The io.Writer to use; nil keeps the current writer
//
// Returns:
//   - func(): Restores the writer in place before the call
func SetWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	previous := writer
	if w != nil {
		writer = w
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		writer = previous
	}
}

// logf writes one prefixed line while holding the read lock, so concurrent
// passes never interleave within a line.
func logf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(writer, prefix+format+"\n", args...)
}

// Printf prints a formatted verbose message if enabled.
func Printf(format string, args ...any) {
	logf(format, args...)
}

// Info prints msg if enabled.
func Info(msg string) {
	logf("%s", msg)
}

// Infof prints a formatted informational message if enabled.
func Infof(format string, args ...any) {
	logf(format, args...)
}

// ConfigLoaded logs which config file was loaded.
func ConfigLoaded(path string) {
	logf("Config loaded: %s", path)
}

// CardRejected logs which filter hid a card.
//
// Parameters:
//   - name: Display name of the card
//   - filter: The filter that rejected it (price, features, senior, search)
func CardRejected(name, filter string) {
	logf("Card %q hidden by %s filter", name, filter)
}

// PassCompleted logs the outcome of one recomputation pass.
func PassCompleted(visible, total int, sortKey string) {
	logf("Filter pass: %d/%d visible, sort=%q", visible, total, sortKey)
}

// SearchScheduled logs a search input waiting out the debounce window.
func SearchScheduled(text string, wait time.Duration) {
	logf("Search %q scheduled in %s", text, wait)
}
