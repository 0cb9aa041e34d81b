package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCaptureOutput tests stdout and stderr capture.
//
// It verifies:
//   - Each stream is captured separately
//   - Output larger than a pipe buffer does not block
//   - The original streams are restored
func TestCaptureOutput(t *testing.T) {
	origOut, origErr := os.Stdout, os.Stderr

	out, errOut := CaptureOutput(t, func() {
		fmt.Print("to stdout")
		fmt.Fprint(os.Stderr, "to stderr")
	})
	assert.Equal(t, "to stdout", out)
	assert.Equal(t, "to stderr", errOut)

	big := strings.Repeat("x", 256*1024)
	assert.Len(t, CaptureStdout(t, func() { fmt.Print(big) }), len(big))
	assert.Equal(t, "oops\n", CaptureStderr(t, func() { fmt.Fprintln(os.Stderr, "oops") }))

	assert.Same(t, origOut, os.Stdout)
	assert.Same(t, origErr, os.Stderr)
}

// TestWriteListing tests the listing fixture helper.
//
// It verifies:
//   - The file is written with the fixture content
func TestWriteListing(t *testing.T) {
	path := WriteListing(t)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ListingPage, string(data))
	assert.True(t, strings.HasSuffix(path, "listing.html"))
}
