package entity

import (
	"github.com/paulmach/orb"
)

// MinRatingSentinel is the rating given to venues the provider has not rated.
// It is below every accepted minimum except zero.
const MinRatingSentinel = 0.0

// Venue is a candidate restaurant returned by the nearby search.
type Venue struct {
	PlaceID  string    // Provider place identifier, unique per venue.
	Name     string    // Display name.
	Point    orb.Point // Coordinates in [lng, lat] order.
	Rating   float64   // 0 to 5, MinRatingSentinel when unrated.
	Vicinity string    // Short address, may be empty.
}

// MeetsRating reports whether the venue rating is at least min.
func (v Venue) MeetsRating(min float64) bool {
	return v.Rating >= min
}
