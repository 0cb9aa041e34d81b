// Package testutil provides shared test helpers: output capture and listing fixtures.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureStdout runs fn with os.Stdout redirected and returns what it printed.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	out, _ := CaptureOutput(t, fn)
	return out
}

// CaptureStderr runs fn with os.Stderr redirected and returns what it printed.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	_, errOut := CaptureOutput(t, fn)
	return errOut
}

// CaptureOutput runs fn with both os.Stdout and os.Stderr redirected.
//
// The pipes are drained concurrently, so fn may print more than a pipe
// buffer holds. Both streams are restored before returning.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute while capturing
//
// Returns:
//   - stdout: Everything written to os.Stdout during fn
//   - stderr: Everything written to os.Stderr during fn
func CaptureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	oldStdout, oldStderr := os.Stdout, os.Stderr
	outR, outW := mustPipe(t)
	errR, errW := mustPipe(t)
	os.Stdout, os.Stderr = outW, errW

	outCh := drain(outR)
	errCh := drain(errR)

	defer func() {
		os.Stdout, os.Stderr = oldStdout, oldStderr
	}()
	fn()

	_ = outW.Close()
	_ = errW.Close()
	return <-outCh, <-errCh
}

func mustPipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	return r, w
}

func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		ch <- buf.String()
	}()
	return ch
}
