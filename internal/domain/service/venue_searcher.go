package service

import (
	"context"

	"meetup/internal/domain/entity"

	"github.com/paulmach/orb"
)

// VenueSearchRequest describes one page of a nearby search.
type VenueSearchRequest struct {
	Center       orb.Point
	RadiusMeters float64
	Category     string // Provider place type, e.g. "restaurant".
	Keyword      string // Cuisine keyword, empty for an unfiltered search.
	PageToken    string // Continuation token from the previous page.
}

// VenueSearchPage is one page of nearby search results.
type VenueSearchPage struct {
	Venues        []entity.Venue
	NextPageToken string
	Skipped       int // Records dropped for missing identity, name or geometry.
}

// VenueSearcher finds venues around a point.
type VenueSearcher interface {
	SearchNearby(ctx context.Context, req *VenueSearchRequest) (*VenueSearchPage, error)
}
