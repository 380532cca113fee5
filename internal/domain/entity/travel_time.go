package entity

import "time"

// TravelTime is one element of a walking matrix.
// Reachable is false when the provider returned no route for the pair.
type TravelTime struct {
	Duration  time.Duration
	Reachable bool
}

// Minutes returns the duration in fractional minutes.
func (t TravelTime) Minutes() float64 {
	return t.Duration.Seconds() / 60
}

// Within reports whether the pair is reachable in at most maxMinutes.
func (t TravelTime) Within(maxMinutes float64) bool {
	return t.Reachable && t.Minutes() <= maxMinutes
}
