package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExitError tests the ExitError type.
//
// It verifies:
//   - Message takes precedence over the wrapped error
//   - The wrapped error is reachable with errors.Is
//   - An empty error reports its code
func TestExitError(t *testing.T) {
	base := errors.New("listing.html: no such file")

	wrapped := NewExitError(ExitFailure, base)
	assert.Equal(t, "listing.html: no such file", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)

	withMsg := &ExitError{Code: ExitConfigError, Message: "bad config", Err: base}
	assert.Equal(t, "bad config", withMsg.Error())

	assert.Equal(t, "exit code 1", (&ExitError{Code: ExitPartialFailure}).Error())
	assert.Equal(t, "2 of 5 events failed", NewExitErrorf(ExitPartialFailure, "%d of %d events failed", 2, 5).Error())
}

// TestGetExitCode tests mapping errors to process exit codes.
//
// It verifies:
//   - nil maps to success
//   - ExitErrors keep their code, even when wrapped
//   - Plain errors map to ExitFailure
func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitConfigError, GetExitCode(NewExitError(ExitConfigError, nil)))
	assert.Equal(t, ExitPartialFailure, GetExitCode(fmt.Errorf("session: %w", NewExitErrorf(ExitPartialFailure, "x"))))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))

	exitErr, ok := IsExitError(fmt.Errorf("wrap: %w", NewExitError(ExitConfigError, nil)))
	require.True(t, ok)
	assert.Equal(t, ExitConfigError, exitErr.Code)
	_, ok = IsExitError(errors.New("plain"))
	assert.False(t, ok)
}

// TestHints tests hint lookup.
//
// It verifies:
//   - Matching is case-insensitive
//   - Unmatched and nil errors get no hint
//   - EnhanceErrorWithHint appends the hint on a new line
func TestHints(t *testing.T) {
	err := errors.New("price=\"9\": No Such Option")
	assert.Contains(t, GetHint(err), "No checkbox or sort option")

	assert.Equal(t, "", GetHint(errors.New("disk full")))
	assert.Equal(t, "", GetHint(nil))
	assert.Equal(t, "", EnhanceErrorWithHint(nil))
	assert.Equal(t, "disk full", EnhanceErrorWithHint(errors.New("disk full")))

	enhanced := EnhanceErrorWithHint(errors.New(`unsupported listing file "a.txt"`))
	assert.Contains(t, enhanced, "unsupported listing file \"a.txt\"\n  ")
	assert.Contains(t, enhanced, ".xlsx")
}
