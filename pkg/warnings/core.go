// Package warnings routes user-facing warnings to a swappable writer.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning to the configured warning writer.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, format, args...)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}

// Collector captures warnings for deferred output.
//
// It implements io.Writer so it can be installed with SetWarningWriter.
// Each non-empty line written becomes one message. Collector is safe for
// concurrent use; debounced passes warn from timer goroutines.
type Collector struct {
	mu       sync.Mutex
	messages []string
}

// Write splits p on newlines and stores the non-empty trimmed lines.
func (c *Collector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	return len(p), nil
}

// Messages returns a copy of all collected messages.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Reset clears all collected messages.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}
