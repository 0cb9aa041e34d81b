package constants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidationLabels tests the validation status labels.
//
// It verifies:
//   - Each label starts with the matching icon
func TestValidationLabels(t *testing.T) {
	assert.True(t, strings.HasPrefix(ValidationInvalid, IconError))
	assert.True(t, strings.HasSuffix(ValidationValid, "valid"))
	assert.NotEqual(t, StatusShown, StatusHidden)
}
