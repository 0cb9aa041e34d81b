package cmd

import (
	"io"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajxudir/qcfilter/pkg/testutil"
)

// resetFlags restores every command flag variable after the test, since
// cobra keeps parsed values in package-level vars between executions.
func resetFlags(t *testing.T) {
	t.Helper()
	saved := struct {
		price, features, senior, search, sort, cfg, out, htmlOut, category string
		all, keepOrder                                                   bool
		sessCfg, sessCategory                                            string
		sessAll                                                          bool
		showDefaults, showEffective, initCfg, validate                   bool
		cfgPath, cfgDir                                                  string
		settle                                                           time.Duration
		verbose, version, skipBuild                                      bool
	}{
		filterPriceFlag, filterFeaturesFlag, filterSeniorFlag, filterSearchFlag, filterSortFlag,
		filterConfigFlag, filterOutputFlag, filterHTMLOutFlag, filterCategoryFlag,
		filterAllFlag, filterKeepOrderFlag,
		sessionConfigFlag, sessionCategoryFlag, sessionAllFlag,
		configShowDefaultsFlag, configShowEffectiveFlag, configInitFlag, configValidateFlag,
		configPathFlag, configDirFlag,
		watchSettleFlag,
		verboseFlag, versionFlag, skipBuildChecksFlag,
	}
	t.Cleanup(func() {
		filterPriceFlag, filterFeaturesFlag, filterSeniorFlag = saved.price, saved.features, saved.senior
		filterSearchFlag, filterSortFlag = saved.search, saved.sort
		filterConfigFlag, filterOutputFlag, filterHTMLOutFlag = saved.cfg, saved.out, saved.htmlOut
		filterCategoryFlag, filterAllFlag, filterKeepOrderFlag = saved.category, saved.all, saved.keepOrder
		sessionConfigFlag, sessionCategoryFlag, sessionAllFlag = saved.sessCfg, saved.sessCategory, saved.sessAll
		configShowDefaultsFlag, configShowEffectiveFlag = saved.showDefaults, saved.showEffective
		configInitFlag, configValidateFlag = saved.initCfg, saved.validate
		configPathFlag, configDirFlag = saved.cfgPath, saved.cfgDir
		watchSettleFlag = saved.settle
		verboseFlag, versionFlag, skipBuildChecksFlag = saved.verbose, saved.version, saved.skipBuild
	})
}

// resetFlagDefaults puts every flag of c and its subcommands back to its
// declared default, so a second execution in the same test starts clean.
func resetFlagDefaults(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlagDefaults(sub)
	}
}

// runCLI executes the root command with args and returns what it printed.
// Flags start from their defaults on every call.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(t)
	resetFlagDefaults(rootCmd)
	rootCmd.SetArgs(append(args, "--skip-build-checks"))
	rootCmd.SetIn(stdin)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	stdout, stderr = testutil.CaptureOutput(t, func() {
		err = ExecuteTest()
	})
	return stdout, stderr, err
}
