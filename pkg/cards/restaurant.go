package cards

// Restaurant is one listing record used to build a card.
//
// Fields:
//   - Name: Display name
//   - Address: Street address shown on the card
//   - Cuisine: Cuisine label
//   - Category: Listing category (not used for filtering)
//   - Price: Price tier, 0 when unknown
//   - Rating: Average rating
//   - Reviews: Number of reviews
//   - Features: Service features such as Delivery or Takeout
//   - Wheelchair: Whether the wheelchair badge is shown
type Restaurant struct {
	Name       string   `json:"name" yaml:"name"`
	Address    string   `json:"address" yaml:"address"`
	Cuisine    string   `json:"cuisine" yaml:"cuisine"`
	Category   string   `json:"category,omitempty" yaml:"category,omitempty"`
	Price      int      `json:"price" yaml:"price"`
	Rating     float64  `json:"rating" yaml:"rating"`
	Reviews    int      `json:"reviews" yaml:"reviews"`
	Features   []string `json:"features" yaml:"features"`
	Wheelchair bool     `json:"wheelchair" yaml:"wheelchair"`
}

// Score is rating times reviews, the order listings are published in.
func (r Restaurant) Score() float64 {
	return r.Rating * float64(r.Reviews)
}
