// Package presenter shapes use case results for the API responses.
package presenter

import (
	"meetup/internal/domain/entity"
	"meetup/internal/usecase"
	"meetup/internal/util"
)

const (
	OutcomeMatched   = "matched"
	OutcomeNoMatches = "no_matches"

	minutesDecimals = 1
)

// LocationResponse is a resolved origin.
type LocationResponse struct {
	Query            string  `json:"query"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
}

// MatchResponse is one row of the results table.
type MatchResponse struct {
	PlaceID      string  `json:"place_id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	MinutesFromA float64 `json:"minutes_from_a"`
	MinutesFromB float64 `json:"minutes_from_b"`
	Vicinity     string  `json:"vicinity,omitempty"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	MapsURL      string  `json:"maps_url"`
}

// MatchResultResponse is the body of a successful search.
type MatchResultResponse struct {
	Outcome        string           `json:"outcome"`
	OriginA        LocationResponse `json:"origin_a"`
	OriginB        LocationResponse `json:"origin_b"`
	RadiusMeters   float64          `json:"radius_meters"`
	CandidateCount int              `json:"candidate_count"`
	RatedCount     int              `json:"rated_count"`
	SkippedCount   int              `json:"skipped_count"`
	Matches        []MatchResponse  `json:"matches"`
}

// NewMatchResultResponse converts a result, rounding minutes to one decimal
// for display. Filtering has already used the exact values.
func NewMatchResultResponse(result *usecase.MatchResult) *MatchResultResponse {
	resp := &MatchResultResponse{
		Outcome:        OutcomeNoMatches,
		OriginA:        newLocationResponse(result.OriginA),
		OriginB:        newLocationResponse(result.OriginB),
		RadiusMeters:   result.RadiusMeters,
		CandidateCount: result.CandidateCount,
		RatedCount:     result.RatedCount,
		SkippedCount:   result.SkippedCount,
		Matches:        make([]MatchResponse, 0, len(result.Matches)),
	}
	if len(result.Matches) > 0 {
		resp.Outcome = OutcomeMatched
	}

	for _, m := range result.Matches {
		resp.Matches = append(resp.Matches, MatchResponse{
			PlaceID:      m.PlaceID,
			Name:         m.Name,
			Rating:       m.Rating,
			MinutesFromA: util.RoundTo(m.MinutesFromA, minutesDecimals),
			MinutesFromB: util.RoundTo(m.MinutesFromB, minutesDecimals),
			Vicinity:     m.Vicinity,
			Lat:          m.Point.Lat(),
			Lng:          m.Point.Lon(),
			MapsURL:      m.MapsURL,
		})
	}

	return resp
}

func newLocationResponse(l entity.Location) LocationResponse {
	return LocationResponse{
		Query:            l.Query,
		FormattedAddress: l.FormattedAddress,
		Lat:              l.Lat(),
		Lng:              l.Lng(),
	}
}
