package verbose

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests the behavior of Enable and Disable functions.
//
// It verifies:
//   - Disable sets enabled state to false
//   - Enable sets enabled state to true
func TestEnableDisable(t *testing.T) {
	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestSetWriter tests the behavior of SetWriter.
//
// It verifies:
//   - Messages go to the new writer with the [DEBUG] prefix
//   - A nil writer keeps the current one
//   - The restore function puts the previous writer back
func TestSetWriter(t *testing.T) {
	first := &bytes.Buffer{}
	restore := SetWriter(first)
	defer restore()

	Enable()
	defer Disable()
	Printf("test %s", "message")
	assert.Equal(t, "[DEBUG] test message\n", first.String())

	restoreNil := SetWriter(nil)
	Printf("another message")
	assert.Contains(t, first.String(), "[DEBUG] another message")

	second := &bytes.Buffer{}
	restoreSecond := SetWriter(second)
	Info("to second")
	restoreSecond()
	Info("back to first")
	restoreNil()

	assert.Equal(t, "[DEBUG] to second\n", second.String())
	assert.Contains(t, first.String(), "[DEBUG] back to first")
}

// TestDomainMessages tests the pass and card helpers.
//
// It verifies:
//   - Nothing is written while disabled
//   - Enabled helpers format card names, counts and durations
func TestDomainMessages(t *testing.T) {
	buf := &bytes.Buffer{}
	restore := SetWriter(buf)
	defer restore()

	Disable()
	CardRejected("Alpha", "price")
	PassCompleted(1, 2, "rating")
	ConfigLoaded("x.yml")
	Infof("hidden %d", 1)
	assert.Empty(t, buf.String())

	Enable()
	defer Disable()
	CardRejected("Alpha", "price")
	PassCompleted(1, 2, "rating")
	ConfigLoaded("x.yml")
	Infof("formatted %d", 7)
	SearchScheduled("sushi", 300*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, `[DEBUG] Card "Alpha" hidden by price filter`)
	assert.Contains(t, out, `[DEBUG] Filter pass: 1/2 visible, sort="rating"`)
	assert.Contains(t, out, "[DEBUG] Config loaded: x.yml")
	assert.Contains(t, out, "[DEBUG] formatted 7")
	assert.Contains(t, out, `[DEBUG] Search "sushi" scheduled in 300ms`)
}
