// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"meetup/internal/domain/entity"
)

// FindMatchesInput holds the search form: two addresses and the filters.
type FindMatchesInput struct {
	OriginA    string
	OriginB    string
	MaxMinutes int      // Walking limit applied to both origins.
	MinRating  int      // 0 to 5, unrated venues only pass at 0.
	Cuisines   []string // Empty or containing "Any" means no cuisine filter.
}

// MatchResult is a completed search. An empty Matches slice is a valid
// outcome, distinct from a failure to resolve an origin.
type MatchResult struct {
	OriginA      entity.Location
	OriginB      entity.Location
	RadiusMeters float64
	Matches      []entity.Match

	CandidateCount int // Distinct venues after merging every search term.
	RatedCount     int // Venues left after the rating filter.
	SkippedCount   int // Records dropped as malformed by an adapter or the matrix.
}

// MatchUsecase finds venues reachable on foot from two origins.
type MatchUsecase interface {
	FindMatches(ctx context.Context, input *FindMatchesInput) (*MatchResult, error)
}
