package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/errors"
	"github.com/ajxudir/qcfilter/pkg/testutil"
)

// writeSessionListing writes the fixture page with a local config setting
// the debounce window.
func writeSessionListing(t *testing.T, cfg string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, config.LocalConfigName, cfg)
	return testutil.WriteFile(t, dir, "listing.html", testutil.ListingPage)
}

// TestSessionEvents tests a scripted session.
//
// It verifies:
//   - The count line is printed after the initial pass and every event
//   - A typed search runs after the debounce window and wait blocks for it
//   - show prints the visible cards and the filters in effect
//   - Events after quit are not applied
func TestSessionEvents(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	page := writeSessionListing(t, "debounce_ms: 20\n")

	events := strings.Join([]string{
		"# narrow to the cheapest and priciest",
		"check price 1",
		"check price 3",
		"",
		"type PASTA",
		"wait",
		"sort reviews",
		"show",
		"uncheck price 3",
		"quit",
		"check price 2",
	}, "\n")

	out, stderr, err := runCLI(t, strings.NewReader(events), "session", page)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, []string{"3 restaurants", "1 restaurants", "2 restaurants", "1 restaurants", "1 restaurants"}, lines[:5])
	assert.Contains(t, out, "Pasta Roma")
	assert.Contains(t, out, "1 restaurants (price: 1,3; search: pasta)")
	assert.Equal(t, "0 restaurants", lines[len(lines)-1])
}

// TestSessionTypeKeepsSpaces tests that typed text reaches the search box as is.
//
// It verifies:
//   - A trailing space is part of the search term
//   - A leading space after the verb is part of the search term
//   - Indentation before the verb is ignored
func TestSessionTypeKeepsSpaces(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	page := writeSessionListing(t, "debounce_ms: 20\n")

	events := strings.Join([]string{
		"type house ",
		"wait",
		"type  ko",
		"wait",
		"  type house",
		"wait",
	}, "\n")

	out, stderr, err := runCLI(t, strings.NewReader(events), "session", page)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "3 restaurants\n0 restaurants\n1 restaurants\n1 restaurants\n", out)
}

// TestSessionSearchCoalesces tests typing faster than the debounce window.
//
// It verifies:
//   - Only one search pass runs for a burst of type events
//   - A search pending at end of input is applied before exit
func TestSessionSearchCoalesces(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	page := writeSessionListing(t, "debounce_ms: 5000\n")

	out, _, err := runCLI(t, strings.NewReader("type s\ntype su\ntype sushi\n"), "session", page)
	require.NoError(t, err)
	assert.Equal(t, "3 restaurants\n1 restaurants\n", out)
}

// TestSessionFailures tests rejected events.
//
// It verifies:
//   - Unknown values, verbs and malformed lines are reported with their line number
//   - The session keeps going after a rejected event
//   - The exit code signals partial failure
func TestSessionFailures(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())
	page := writeSessionListing(t, "debounce_ms: 20\n")

	events := "check price 9\nfrobnicate\ncheck price\nsort distance\ncheck features Delivery\n"
	out, stderr, err := runCLI(t, strings.NewReader(events), "session", page)

	require.Error(t, err)
	assert.Equal(t, errors.ExitPartialFailure, errors.GetExitCode(err))
	assert.EqualError(t, err, "4 of 5 events failed")
	assert.Contains(t, stderr, `line 1: no such option: price="9"`)
	assert.Contains(t, stderr, `line 2: unknown event "frobnicate"`)
	assert.Contains(t, stderr, "line 3: usage: check <group> <value>")
	assert.Contains(t, stderr, "line 4: no such option")
	assert.Equal(t, "3 restaurants\n3 restaurants\n", out)
}
