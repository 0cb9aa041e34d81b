package errors

import (
	"strings"

	"github.com/ajxudir/qcfilter/pkg/constants"
)

// ErrorHint provides an actionable resolution for a common error.
//
// Fields:
//   - Pattern: Substring to match in the error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action that resolves it
type ErrorHint struct {
	Pattern    string
	Hint       string
	Resolution string
}

// CommonErrorHints lists known error patterns, checked in order.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "unsupported listing file",
		Hint:       "Unknown listing type",
		Resolution: "save the listing as .html, .json, .yaml, .csv or .xlsx",
	},
	{
		Pattern:    "control not present",
		Hint:       "The page lacks that control",
		Resolution: "check the selectors in .qcfilter.yml against the page markup",
	},
	{
		Pattern:    "no such option",
		Hint:       "No checkbox or sort option has that value",
		Resolution: "run 'qcfilter filter <page> --output json' to see the cards, or inspect the page's checkbox values",
	},
	{
		Pattern:    "invalid data-features",
		Hint:       "A card's data-features is not a JSON list",
		Resolution: "fix the attribute, or set malformed_features: empty to treat it as no features",
	},
	{
		Pattern:    "invalid configuration",
		Hint:       "Configuration rejected",
		Resolution: "run 'qcfilter config --validate <file>' for details",
	},
	{
		Pattern:    "invalid yaml",
		Hint:       "YAML syntax error",
		Resolution: "check indentation and quoting; 'qcfilter config --show-defaults' prints a valid example",
	},
	{
		Pattern:    "missing required column",
		Hint:       "Spreadsheet header not recognized",
		Resolution: "the first row must name the columns, including name",
	},
}

// GetHint returns "hint: resolution" for the first pattern err matches, or "".
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}
	return ""
}

// EnhanceErrorWithHint appends a matching hint on its own line.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: The error message, followed by the hint when one matches
//
// Example:
//
//	fmt.Fprintf(os.Stderr, "Error: %s\n", errors.EnhanceErrorWithHint(err))
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if hint := GetHint(err); hint != "" {
		return msg + "\n  " + constants.IconLightbulb + " " + hint
	}
	return msg
}
