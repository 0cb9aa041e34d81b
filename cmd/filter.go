package cmd

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/constants"
	"github.com/ajxudir/qcfilter/pkg/errors"
	"github.com/ajxudir/qcfilter/pkg/filtering"
	"github.com/ajxudir/qcfilter/pkg/formats"
	"github.com/ajxudir/qcfilter/pkg/output"
	"github.com/ajxudir/qcfilter/pkg/utils"
	"github.com/ajxudir/qcfilter/pkg/verbose"
	"github.com/ajxudir/qcfilter/pkg/warnings"
	"github.com/spf13/cobra"
)

var (
	filterPriceFlag     string
	filterFeaturesFlag  string
	filterSeniorFlag    string
	filterSearchFlag    string
	filterSortFlag      string
	filterConfigFlag    string
	filterOutputFlag    string
	filterHTMLOutFlag   string
	filterAllFlag       bool
	filterCategoryFlag  string
	filterKeepOrderFlag bool
)

var filterCmd = &cobra.Command{
	Use:   "filter <page>",
	Short: "Apply filters to a listing and print the visible restaurants",
	Long: `Load a listing page (.html) or restaurant export (.json, .yaml, .csv, .xlsx),
check the requested boxes, set the search text and sort order, and print the
cards left visible in their new order.`,
	Args: cobra.ExactArgs(1),
	RunE: runFilter,
}

func init() {
	addFilterFlags(filterCmd)
}

// addFilterFlags registers the selection and loading flags shared by filter and watch.
func addFilterFlags(c *cobra.Command) {
	c.Flags().StringVar(&filterPriceFlag, "price", "", "Price tiers to check (comma-separated), e.g. 1,2")
	c.Flags().StringVar(&filterFeaturesFlag, "features", "", "Features to check (comma-separated), e.g. Delivery,Takeout")
	c.Flags().StringVar(&filterSeniorFlag, "senior", "", "Senior-friendliness tags to check (comma-separated): wheelchair,parking,quiet,seating")
	c.Flags().StringVarP(&filterSearchFlag, "search", "s", "", "Search text matched against name, address and cuisine")
	c.Flags().StringVar(&filterSortFlag, "sort", "", "Sort key: rating, reviews, price-low, price-high")
	c.Flags().StringVarP(&filterConfigFlag, "config", "c", "", "Config file path (default: .qcfilter.yml next to the page)")
	c.Flags().StringVarP(&filterOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
	c.Flags().StringVar(&filterHTMLOutFlag, "html-out", "", "Write the filtered page to this file")
	c.Flags().BoolVarP(&filterAllFlag, "all", "a", false, "List hidden cards too")
	c.Flags().StringVar(&filterCategoryFlag, "category", "", "Keep only records of this category (record files only)")
	c.Flags().BoolVar(&filterKeepOrderFlag, "keep-order", false, "Keep record file order instead of rating x reviews order")
}

// runFilter executes the filter command for the page named in args.
func runFilter(cmd *cobra.Command, args []string) error {
	return filterListing(args[0], os.Stdout, os.Stderr)
}

// filterListing loads path, applies the flag selections and writes the result.
//
// In table mode warnings are printed to errOut after the table; structured
// formats carry them in their warnings field instead.
//
// Parameters:
//   - path: The listing file
//   - out: Destination for the result
//   - errOut: Destination for table-mode warnings
//
// Returns:
//   - error: An ExitError with ExitConfigError for config problems and
//     ExitFailure for load, pass or write failures
func filterListing(path string, out, errOut io.Writer) error {
	format, err := output.ParseFormat(filterOutputFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}

	collector := &warnings.Collector{}
	restoreWarnings := warnings.SetWarningWriter(collector)
	defer restoreWarnings()

	ctrl, cfg, err := openListing(path, filterConfigFlag, formats.LoadOptions{
		Category:  filterCategoryFlag,
		KeepOrder: filterKeepOrderFlag,
	})
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := applySelections(ctrl, cfg); err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("filter pass aborted: %w", err))
	}

	res, err := ctrl.ApplyFilters()
	if err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("filter pass aborted: %w", err))
	}

	if filterHTMLOutFlag != "" {
		if err := writeDocument(ctrl, filterHTMLOutFlag); err != nil {
			return errors.NewExitError(errors.ExitFailure, err)
		}
		verbose.Infof("Wrote filtered page to %s", filterHTMLOutFlag)
	}

	messages := collector.Messages()
	var resultWarnings []string
	if output.IsStructuredFormat(format) {
		resultWarnings = messages
	}
	result := output.NewFilterResult(filepath.Base(path), res, ctrl.OrderedCards(), filterAllFlag, resultWarnings)
	if err := output.WriteFilterResult(out, format, result); err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("failed to write output: %w", err))
	}

	if !output.IsStructuredFormat(format) {
		for _, m := range messages {
			_, _ = fmt.Fprintf(errOut, "%s  %s\n", constants.IconWarn, m)
		}
	}
	return nil
}

// openListing loads the config for path's directory, the listing itself and
// a controller over it. The controller's initial pass has already run.
//
// Returns:
//   - *filtering.Controller: The controller; the caller must Close it
//   - *config.Config: The configuration in effect
//   - error: An ExitError with ExitConfigError or ExitFailure
func openListing(path, configPath string, opts formats.LoadOptions, ctrlOpts ...filtering.ControllerOption) (*filtering.Controller, *config.Config, error) {
	cfg, err := loadAndValidateConfig(configPath, filepath.Dir(path))
	if err != nil {
		return nil, nil, err
	}

	doc, err := formats.Load(path, cfg, opts)
	if err != nil {
		return nil, nil, errors.NewExitError(errors.ExitFailure, fmt.Errorf("failed to load listing: %w", err))
	}

	ctrl, err := filtering.NewController(doc, cfg, ctrlOpts...)
	if err != nil {
		ctrl.Close()
		return nil, nil, errors.NewExitError(errors.ExitFailure, fmt.Errorf("filter pass aborted: %w", err))
	}
	return ctrl, cfg, nil
}

// applySelections checks the boxes named by the flags, then sets the search
// text and sort order. Values the page does not offer are reported as
// warnings and skipped.
//
// Returns:
//   - error: Only when a pass is aborted
func applySelections(ctrl *filtering.Controller, cfg *config.Config) error {
	selections := []struct {
		group  string
		values []string
	}{
		{cfg.Groups.Price.Name, utils.TrimAndSplit(filterPriceFlag, ",")},
		{cfg.Groups.Features.Name, utils.TrimAndSplit(filterFeaturesFlag, ",")},
		{cfg.Groups.Senior.Name, utils.TrimAndSplit(filterSeniorFlag, ",")},
	}
	for _, sel := range selections {
		if err := checkValues(ctrl, sel.group, sel.values); err != nil {
			return err
		}
	}

	if filterSearchFlag != "" {
		if err := ctrl.Input(filterSearchFlag); err != nil {
			warnings.Warnf("Search ignored: %v\n", err)
		} else {
			ctrl.FlushSearch()
		}
	}

	if filterSortFlag != "" {
		if _, err := ctrl.SelectSort(filterSortFlag); err != nil {
			if !isEventError(err) {
				return err
			}
			warnings.Warnf("Sort ignored: %v\n", err)
		}
	}
	return nil
}

// checkValues checks each value in group, matching the page's box values
// case-insensitively.
func checkValues(ctrl *filtering.Controller, group string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	offered := ctrl.Options(group)
	for _, v := range values {
		match, ok := utils.FindIgnoreCase(offered, v)
		if !ok {
			warnings.Warnf("%s %q is not offered by the page; ignored\n", group, v)
			continue
		}
		if _, err := ctrl.SetChecked(group, match, true); err != nil {
			if !isEventError(err) {
				return err
			}
			warnings.Warnf("%v\n", err)
		}
	}
	return nil
}

// isEventError reports whether err rejected an event rather than aborting a pass.
func isEventError(err error) bool {
	return stderrors.Is(err, filtering.ErrNoSuchOption) || stderrors.Is(err, filtering.ErrMissingControl)
}

// writeDocument renders the controller's document to path.
func writeDocument(ctrl *filtering.Controller, path string) error {
	var buf bytes.Buffer
	if err := ctrl.Document().Render(&buf); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if err := writeFileFunc(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
