// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// Location is a geocoded origin. It is created by the geocoder and never
// modified afterwards.
type Location struct {
	Query            string    // The free-text address as entered by the user.
	Point            orb.Point // Coordinates in [lng, lat] order.
	FormattedAddress string    // The provider's canonical address, may be empty.
}

// NewLocation creates a Location from latitude and longitude.
func NewLocation(query string, lat, lng float64, formatted string) *Location {
	return &Location{
		Query:            query,
		Point:            orb.Point{lng, lat},
		FormattedAddress: formatted,
	}
}

// Lat returns the latitude.
func (l Location) Lat() float64 {
	return l.Point.Lat()
}

// Lng returns the longitude.
func (l Location) Lng() float64 {
	return l.Point.Lon()
}

// DisplayName is the formatted address when known, otherwise the raw query.
func (l Location) DisplayName() string {
	if l.FormattedAddress != "" {
		return l.FormattedAddress
	}

	return l.Query
}
