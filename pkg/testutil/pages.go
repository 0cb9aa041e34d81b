package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ListingPage is a complete listing with every control and three cards.
//
// Source order is Lomi House, Sushi Ko, Pasta Roma. Sorted by rating the
// order is Sushi Ko (4.8), Pasta Roma (4.5), Lomi House (4.0); by reviews it
// is Pasta Roma (300), Lomi House (50), Sushi Ko (10). Only Sushi Ko carries
// the wheelchair badge.
const ListingPage = `<!DOCTYPE html>
<html><head><title>QC Restaurants</title></head><body>
<form id="filters">
  <input type="checkbox" name="price" value="1"><input type="checkbox" name="price" value="2">
  <input type="checkbox" name="price" value="3"><input type="checkbox" name="price" value="4">
  <input type="checkbox" name="features" value="Delivery"><input type="checkbox" name="features" value="Takeout">
  <input type="checkbox" name="features" value="Dine-in">
  <input type="checkbox" name="senior" value="wheelchair"><input type="checkbox" name="senior" value="parking">
  <input type="checkbox" name="senior" value="quiet"><input type="checkbox" name="senior" value="seating">
  <input type="search" id="restaurantSearch">
  <select id="sortBy">
    <option value="rating">Highest rated</option>
    <option value="reviews">Most reviewed</option>
    <option value="price-low">Price: low to high</option>
    <option value="price-high">Price: high to low</option>
  </select>
</form>
<p id="resultsCount"></p>
<div class="restaurant-list">
<div class="restaurant-card" data-price="1" data-rating="4.0" data-reviews="50" data-features='["Delivery","Takeout"]'>
  <h3 class="restaurant-name">Lomi House</h3><p class="address">Kamuning</p><span class="cuisine-badge">Filipino</span>
</div>
<div class="restaurant-card" data-price="2" data-rating="4.8" data-reviews="10" data-features='["Delivery"]'>
  <h3 class="restaurant-name">Sushi Ko</h3><p class="address">Tomas Morato</p><span class="cuisine-badge">Japanese</span>
  <span class="feature-badge wheelchair">Wheelchair accessible</span>
</div>
<div class="restaurant-card" data-price="3" data-rating="4.5" data-reviews="300" data-features='["Dine-in","Takeout","Delivery"]'>
  <h3 class="restaurant-name">Pasta Roma</h3><p class="address">Katipunan</p><span class="cuisine-badge">Italian</span>
</div>
</div>
</body></html>`

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteListing writes ListingPage into a fresh temp dir and returns its path.
func WriteListing(t *testing.T) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "listing.html", ListingPage)
}
