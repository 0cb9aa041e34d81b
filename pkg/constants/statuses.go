// Package constants provides string constants shared by the CLI and output writers.
package constants

// Card status values shown in the STATUS column.
const (
	// StatusShown marks a card left visible by the filter pass.
	StatusShown = "shown"

	// StatusHidden marks a card hidden by the filter pass.
	StatusHidden = "hidden"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNone is shown for an unknown price tier.
	PlaceholderNone = "-"

	// FilterAll is accepted by list flags to mean no selection.
	FilterAll = "all"
)

// Icon constants for status display.
const (
	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconError marks a failed session event or an invalid file.
	IconError = "❌"

	// IconCheckmarkBox indicates successful validation.
	IconCheckmarkBox = "✅"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)

// Validation status constants for config file validation.
const (
	// ValidationValid indicates a valid file.
	ValidationValid = "🟢 valid"

	// ValidationInvalid indicates an invalid file.
	ValidationInvalid = "❌ invalid"
)
