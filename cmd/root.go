// Package cmd implements the command-line interface for qcfilter.
// It loads a listing page, drives its filter controller and prints the
// visible restaurants.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ajxudir/qcfilter/pkg/errors"
	"github.com/ajxudir/qcfilter/pkg/verbose"
	"github.com/spf13/cobra"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var skipBuildChecksFlag bool

var rootCmd = &cobra.Command{
	Use:           "qcfilter",
	Short:         "Filter, search and sort restaurant listing cards",
	Long:          `Apply the price, feature, senior-friendliness, search and sort controls of a restaurant listing page and report the visible cards.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		if !skipBuildChecksFlag {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(os.Stderr, warnings)
				fmt.Fprintln(os.Stderr)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput()
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Session finished with rejected events
//   - 2: Listing could not be loaded, or a filter pass was aborted
//   - 3: Configuration error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.EnhanceErrorWithHint(err))
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")

	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(watchCmd)
}

// printVersionOutput prints version, build, and runtime information to stdout.
func printVersionOutput() {
	buildOS, buildArch := getBuildTarget()
	fmt.Printf("  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		fmt.Printf("  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	fmt.Printf("  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Printf("  Date:    %s\n", BuildTime)
	}
	fmt.Println()
	if GitCommit != "" {
		fmt.Printf("  Git:     %s\n", GitCommit)
	}
	fmt.Printf("  Version: %s\n", Version)
}
