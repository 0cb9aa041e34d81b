package cmd

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/qcfilter/pkg/errors"
	"github.com/ajxudir/qcfilter/pkg/testutil"
	"github.com/ajxudir/qcfilter/pkg/verbose"
)

// TestExecuteWithExitCodes tests the behavior of Execute with different exit codes.
//
// It verifies:
//   - Successful commands do not call exitFunc
//   - Failures call exitFunc with the error's exit code
//   - The error is printed with a hint
func TestExecuteWithExitCodes(t *testing.T) {
	resetFlags(t)
	oldExit := exitFunc
	defer func() {
		exitFunc = oldExit
		rootCmd.SetArgs(nil)
	}()

	exitCode := -1
	exitFunc = func(code int) { exitCode = code }

	rootCmd.SetArgs([]string{"--skip-build-checks"})
	out := testutil.CaptureStdout(t, Execute)
	assert.Equal(t, -1, exitCode)
	assert.Contains(t, out, "Usage:")

	rootCmd.SetArgs([]string{"filter", filepath.Join(t.TempDir(), "listing.txt"), "--skip-build-checks"})
	stderr := testutil.CaptureStderr(t, Execute)
	assert.Equal(t, errors.ExitFailure, exitCode)
	assert.Contains(t, stderr, "Error: failed to load listing")
	assert.Contains(t, stderr, "Unknown listing type")

	rootCmd.SetArgs([]string{"nonexistent-subcommand-xyz"})
	testutil.CaptureOutput(t, Execute)
	assert.Equal(t, errors.ExitFailure, exitCode)
}

// TestPersistentPreRun tests the root command's pre-run hook.
//
// It verifies:
//   - --verbose enables debug logging
//   - Build warnings are printed unless skipped
func TestPersistentPreRun(t *testing.T) {
	resetFlags(t)
	oldVersion := Version
	defer func() {
		Version = oldVersion
		verbose.Disable()
	}()

	verboseFlag = true
	skipBuildChecksFlag = true
	Version = "dev"
	stderr := testutil.CaptureStderr(t, func() { rootCmd.PersistentPreRun(rootCmd, nil) })
	assert.True(t, verbose.IsEnabled())
	assert.Empty(t, stderr)

	skipBuildChecksFlag = false
	stderr = testutil.CaptureStderr(t, func() { rootCmd.PersistentPreRun(rootCmd, nil) })
	assert.Contains(t, stderr, `Development build "dev" has no release tag`)
}

// TestVersionDetection tests release detection from the version string.
//
// It verifies:
//   - Non-semver strings are dev builds
//   - The leading v is optional
//   - Prerelease suffixes are detected
func TestVersionDetection(t *testing.T) {
	oldVersion := Version
	defer func() { Version = oldVersion }()

	tests := []struct {
		version    string
		dev        bool
		prerelease bool
	}{
		{"dev", true, false},
		{"", true, false},
		{"1.2.0", false, false},
		{"v1.2.0", false, false},
		{"v1.3.0-rc.1", false, true},
		{"2.0.0-beta", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			Version = tt.version
			assert.Equal(t, tt.dev, IsDevBuild())
			assert.Equal(t, tt.prerelease, IsPrerelease())
			assert.Equal(t, tt.version, GetVersion())
			assert.Equal(t, tt.dev, GetDevBuildWarning() != "")
			assert.Equal(t, tt.prerelease, GetPrereleaseWarning() != "")
		})
	}
}

// TestArchMismatch tests build target reporting.
//
// It verifies:
//   - Dev builds without build values never mismatch
//   - A foreign build target produces a warning
func TestArchMismatch(t *testing.T) {
	oldOS, oldArch := BuildOS, BuildArch
	defer func() { BuildOS, BuildArch = oldOS, oldArch }()

	BuildOS, BuildArch = "", ""
	assert.False(t, HasArchMismatch())
	assert.Empty(t, GetArchMismatchWarning())

	BuildOS, BuildArch = runtime.GOOS, "not-"+runtime.GOARCH
	assert.True(t, HasArchMismatch())
	assert.Contains(t, GetArchMismatchWarning(), "Download the build for this platform")
	assert.Contains(t, GetBuildWarnings(), "not-"+runtime.GOARCH)
}

// TestVersionCommand tests the version subcommand and flag.
//
// It verifies:
//   - Both print the version and Go runtime
func TestVersionCommand(t *testing.T) {
	oldVersion := Version
	defer func() { Version = oldVersion }()
	Version = "v1.0.0"

	out, _, err := runCLI(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: v1.0.0")
	assert.Contains(t, out, runtime.Version())

	out, _, err = runCLI(t, nil, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: v1.0.0")
}
