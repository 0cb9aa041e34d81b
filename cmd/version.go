package cmd

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/constants"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/qcfilter/cmd.Version=v1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show version, build date, and system information.`,
	Run: func(cmd *cobra.Command, args []string) {
		printVersionOutput()
	},
}

// GetVersion returns the current version string, "dev" for development builds.
func GetVersion() string {
	return Version
}

// canonicalVersion returns Version as a semver string with the leading "v"
// semver expects, or "" when Version is not a semantic version.
func canonicalVersion() string {
	v := Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return semver.Canonical(v)
}

// getBuildTarget returns the OS and architecture the binary was built for,
// falling back to the runtime values when ldflags did not set them.
func getBuildTarget() (string, string) {
	buildOS, buildArch := BuildOS, BuildArch
	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}
	return buildOS, buildArch
}

// HasArchMismatch reports whether a release binary runs on a platform other
// than the one it was built for. Dev builds never mismatch.
func HasArchMismatch() bool {
	if BuildOS == "" && BuildArch == "" {
		return false
	}
	buildOS, buildArch := getBuildTarget()
	return buildOS != runtime.GOOS || buildArch != runtime.GOARCH
}

// IsDevBuild returns true when Version is not a semantic version, which is
// the case for builds made without release ldflags.
func IsDevBuild() bool {
	return canonicalVersion() == ""
}

// IsPrerelease returns true for semantic versions carrying a prerelease
// suffix, such as v1.4.0-rc.1.
func IsPrerelease() bool {
	v := canonicalVersion()
	return v != "" && semver.Prerelease(v) != ""
}

// GetArchMismatchWarning returns the mismatch warning, or "".
func GetArchMismatchWarning() string {
	if !HasArchMismatch() {
		return ""
	}
	buildOS, buildArch := getBuildTarget()
	return fmt.Sprintf("%s  Binary built for %s/%s is running on %s/%s.\n"+
		"   Download the build for this platform.\n",
		constants.IconWarn, buildOS, buildArch, runtime.GOOS, runtime.GOARCH)
}

// GetDevBuildWarning returns the development build warning, or "".
func GetDevBuildWarning() string {
	if !IsDevBuild() {
		return ""
	}
	return constants.IconWarn + "  Development build " + strconv.Quote(Version) + " has no release tag.\n"
}

// GetPrereleaseWarning returns the prerelease warning, or "".
func GetPrereleaseWarning() string {
	if !IsPrerelease() {
		return ""
	}
	return constants.IconWarn + "  Prerelease build " + Version + "; install a stable vX.Y.Z release for everyday use.\n"
}

// GetBuildWarnings returns every applicable build warning, concatenated.
func GetBuildWarnings() string {
	var sb strings.Builder
	for _, w := range []string{GetArchMismatchWarning(), GetDevBuildWarning(), GetPrereleaseWarning()} {
		sb.WriteString(w)
	}
	return sb.String()
}
