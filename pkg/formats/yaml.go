package formats

import (
	"fmt"

	"github.com/ajxudir/qcfilter/pkg/cards"
	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML listing files.
//
// Like JSONParser it accepts a top-level sequence or a mapping with a
// "restaurants" key.
type YAMLParser struct{}

// Parse parses YAML content into restaurant records.
//
// Parameters:
//   - content: The raw bytes of the YAML file
//
// Returns:
//   - []cards.Restaurant: The records in file order
//   - error: Returns an error if the YAML is invalid or has an unexpected shape
func (p *YAMLParser) Parse(content []byte) ([]cards.Restaurant, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		var list []cards.Restaurant
		if err := doc.Decode(&list); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return list, nil
	case yaml.MappingNode:
		var wrapped struct {
			Restaurants []cards.Restaurant `yaml:"restaurants"`
		}
		if err := doc.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return wrapped.Restaurants, nil
	default:
		return nil, fmt.Errorf("invalid YAML: expected a list of restaurants or a restaurants key")
	}
}
