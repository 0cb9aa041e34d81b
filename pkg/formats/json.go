package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ajxudir/qcfilter/pkg/cards"
)

// JSONParser parses JSON listing files.
//
// The document is either an array of records or an object with a
// "restaurants" array.
type JSONParser struct{}

// Parse parses JSON content into restaurant records.
//
// Parameters:
//   - content: The raw bytes of the JSON file
//
// Returns:
//   - []cards.Restaurant: The records in file order
//   - error: Returns an error if the JSON is invalid; returns nil on successful parse
func (p *JSONParser) Parse(content []byte) ([]cards.Restaurant, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []cards.Restaurant
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return list, nil
	}

	var wrapped struct {
		Restaurants []cards.Restaurant `json:"restaurants"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return wrapped.Restaurants, nil
}
