package query

import "github.com/flatfinder/rentals-backend-go/internal/models"

// Filter applies the predicate chain to the listing table and returns the
// indices of the survivors in table order. All predicates must pass:
// bedrooms, bathrooms, inclusive price range, then distance. The distance
// predicate only runs when a distance column exists and the criteria set a
// cutoff. An empty result is valid.
func Filter(listings []models.Listing, distances []float64, c models.FilterCriteria) []int {
	useDistance := distances != nil && c.MaxDistanceKm != nil

	matched := make([]int, 0, len(listings))
	for i, l := range listings {
		if c.Bedrooms != nil && l.Bedrooms != *c.Bedrooms {
			continue
		}
		if c.Bathrooms != nil && l.Bathrooms != *c.Bathrooms {
			continue
		}
		if l.Price < c.PriceMin || l.Price > c.PriceMax {
			continue
		}
		if useDistance && distances[i] > *c.MaxDistanceKm {
			continue
		}
		matched = append(matched, i)
	}
	return matched
}
