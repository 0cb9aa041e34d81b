package config

import "time"

// Option kinds declared per checkbox group.
const (
	// KindNumeric parses checkbox values as integers.
	KindNumeric = "numeric"
	// KindText keeps checkbox values as strings.
	KindText = "text"
)

// Malformed feature list policies.
const (
	// MalformedEmpty treats an undecodable data-features attribute as no features.
	MalformedEmpty = "empty"
	// MalformedError aborts the filter pass with an error.
	MalformedError = "error"
)

// Config is the root configuration structure.
type Config struct {
	Selectors         Selectors `yaml:"selectors"`
	Groups            Groups    `yaml:"groups"`
	DebounceMS        int       `yaml:"debounce_ms"`
	DefaultSort       string    `yaml:"default_sort"`
	MalformedFeatures string    `yaml:"malformed_features"`

	// WorkingDir is the directory the config was resolved against.
	WorkingDir string `yaml:"-"`
}

// Selectors names the ids and classes the controller looks up in a page.
//
// Fields:
//   - Card: Class shared by every restaurant card
//   - List: Class of the container cards are reordered in
//   - Name, Address, Cuisine: Classes of the searchable descendants of a card
//   - Badge, Wheelchair: Classes that together mark the wheelchair indicator
//   - Search, Sort, Count: Element ids of the search input, sort select and count display
type Selectors struct {
	Card       string `yaml:"card"`
	List       string `yaml:"list"`
	Name       string `yaml:"name"`
	Address    string `yaml:"address"`
	Cuisine    string `yaml:"cuisine"`
	Badge      string `yaml:"badge"`
	Wheelchair string `yaml:"wheelchair"`
	Search     string `yaml:"search"`
	Sort       string `yaml:"sort"`
	Count      string `yaml:"count"`
}

// Groups configures the three checkbox groups.
type Groups struct {
	Price    GroupCfg `yaml:"price"`
	Features GroupCfg `yaml:"features"`
	Senior   GroupCfg `yaml:"senior"`
}

// GroupCfg is one checkbox group: the input name attribute and the declared
// kind of its values.
type GroupCfg struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// DebounceWait returns the search debounce window as a duration.
func (c *Config) DebounceWait() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// GroupByName resolves a group by its input name attribute.
//
// Parameters:
//   - name: The name attribute shared by the group's checkboxes
//
// Returns:
//   - GroupCfg: The matching group
//   - bool: false when no group uses that name
func (c *Config) GroupByName(name string) (GroupCfg, bool) {
	for _, g := range []GroupCfg{c.Groups.Price, c.Groups.Features, c.Groups.Senior} {
		if g.Name == name {
			return g, true
		}
	}
	return GroupCfg{}, false
}
