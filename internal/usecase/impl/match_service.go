// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"meetup/config"
	deliverycontext "meetup/internal/delivery/context"
	"meetup/internal/domain/entity"
	domainerrors "meetup/internal/domain/errors"
	"meetup/internal/domain/service"
	"meetup/internal/errors"
	"meetup/internal/usecase"
	"meetup/internal/util"

	"github.com/paulmach/orb"
)

const (
	maxRating = 5

	opGeocode        = "geocode"
	opNearbySearch   = "nearby search"
	opDistanceMatrix = "distance matrix"
)

// matchService implements the MatchUsecase interface.
// It holds no per-request state, so one instance serves concurrent requests.
type matchService struct {
	geocoder   service.Geocoder
	searcher   service.VenueSearcher
	travelTime service.TravelTimeCalculator
	search     config.SearchConfig
	mapsHost   string
	logger     *slog.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// NewMatchService is the constructor for matchService.
func NewMatchService(
	geocoder service.Geocoder,
	searcher service.VenueSearcher,
	travelTime service.TravelTimeCalculator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MatchUsecase {
	var search config.SearchConfig
	if cfg.Search != nil {
		search = *cfg.Search
	}
	search.ApplyDefaults()

	mapsHost := ""
	if cfg.Maps != nil {
		mapsHost = cfg.Maps.MapsHost
	}

	return &matchService{
		geocoder:   geocoder,
		searcher:   searcher,
		travelTime: travelTime,
		search:     search,
		mapsHost:   mapsHost,
		logger:     logger,
		sleep:      util.Sleep,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindMatches runs the search: resolve both origins, search around A,
// merge and rating-filter the candidates, then keep those whose walking time
// from both origins is within the limit.
func (srv *matchService) FindMatches(ctx context.Context, input *usecase.FindMatchesInput) (*usecase.MatchResult, error) {
	if err := validateFindMatchesInput(input); err != nil {
		return nil, err
	}

	start := time.Now()

	originA, err := srv.resolve(ctx, domainerrors.OriginA, input.OriginA)
	if err != nil {
		return nil, err
	}
	originB, err := srv.resolve(ctx, domainerrors.OriginB, input.OriginB)
	if err != nil {
		return nil, err
	}

	result := &usecase.MatchResult{
		OriginA:      *originA,
		OriginB:      *originB,
		RadiusMeters: srv.searchRadius(input.MaxMinutes),
		Matches:      []entity.Match{},
	}

	candidates, skipped, err := srv.collectCandidates(ctx, originA.Point, result.RadiusMeters, entity.SearchTerms(input.Cuisines))
	if err != nil {
		return nil, err
	}
	result.CandidateCount = candidates.Len()
	result.SkippedCount = skipped

	minRating := float64(input.MinRating)
	rated := candidates.Filter(func(v entity.Venue) bool { return v.MeetsRating(minRating) })
	result.RatedCount = len(rated)

	maxMinutes := float64(input.MaxMinutes)
	for _, batch := range util.Chunk(rated, srv.search.MatrixBatchSize) {
		matches, skipped, err := srv.matchBatch(ctx, originA.Point, originB.Point, batch, maxMinutes)
		if err != nil {
			return nil, err
		}
		result.Matches = append(result.Matches, matches...)
		result.SkippedCount += skipped
	}

	srv.log(ctx).Info("Meetup search completed",
		slog.Float64("radius_m", result.RadiusMeters),
		slog.Int("candidates", result.CandidateCount),
		slog.Int("rated", result.RatedCount),
		slog.Int("matches", len(result.Matches)),
		slog.Int("skipped", result.SkippedCount),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return result, nil
}

// resolve geocodes one origin. An empty provider answer is a
// LocationNotFoundError naming the origin.
func (srv *matchService) resolve(ctx context.Context, origin, query string) (*entity.Location, error) {
	loc, err := srv.geocoder.Geocode(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Geocoding failed", slog.String("origin", origin), slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(opGeocode, err)
	}
	if loc == nil {
		srv.log(ctx).Info("Origin not found", slog.String("origin", origin), slog.String("query", query))

		return nil, domainerrors.NewLocationNotFoundError(origin, query)
	}

	srv.log(ctx).Debug("Origin resolved",
		slog.String("origin", origin),
		slog.Float64("lat", loc.Lat()),
		slog.Float64("lng", loc.Lng()),
	)

	return loc, nil
}

// searchRadius over-covers the walkable area: street routes are always at
// least as long as the straight line.
func (srv *matchService) searchRadius(maxMinutes int) float64 {
	return float64(maxMinutes) * srv.search.WalkingSpeedMetersPerMinute * srv.search.RadiusSafetyFactor
}

// collectCandidates runs one nearby search per term, following continuation
// tokens up to MaxPages, and merges everything by place id.
func (srv *matchService) collectCandidates(ctx context.Context, center orb.Point, radius float64, terms []string) (*entity.VenueSet, int, error) {
	pages := make([][]entity.Venue, 0, len(terms))
	skipped := 0

	for _, term := range terms {
		pageToken := ""
		for page := 0; page < srv.search.MaxPages; page++ {
			if page > 0 {
				if pageToken == "" {
					break
				}
				// A freshly issued token is rejected until the provider activates it.
				if err := srv.sleep(ctx, srv.search.PageTokenDelay); err != nil {
					return nil, 0, domainerrors.NewUpstreamError(opNearbySearch, errors.Wrap(err, "waiting for page token"))
				}
			}

			resp, err := srv.searcher.SearchNearby(ctx, &service.VenueSearchRequest{
				Center:       center,
				RadiusMeters: radius,
				Category:     srv.search.PlaceType,
				Keyword:      term,
				PageToken:    pageToken,
			})
			if err != nil {
				srv.log(ctx).Error("Nearby search failed", slog.String("keyword", term), slog.Int("page", page+1), slog.Any("error", err))

				return nil, 0, domainerrors.NewUpstreamError(opNearbySearch, err)
			}

			srv.log(ctx).Debug("Nearby search page fetched",
				slog.String("keyword", term),
				slog.Int("page", page+1),
				slog.Int("venues", len(resp.Venues)),
			)

			pages = append(pages, resp.Venues)
			skipped += resp.Skipped
			pageToken = resp.NextPageToken
		}
	}

	return entity.MergeVenues(pages...), skipped, nil
}

// matchBatch asks for one walking matrix covering both origins and the batch,
// then keeps the venues within maxMinutes of both. Venues whose matrix
// element is missing or unroutable are skipped and counted.
func (srv *matchService) matchBatch(ctx context.Context, a, b orb.Point, batch []entity.Venue, maxMinutes float64) ([]entity.Match, int, error) {
	destinations := make([]orb.Point, len(batch))
	for i, v := range batch {
		destinations[i] = v.Point
	}

	matrix, err := srv.travelTime.WalkingMatrix(ctx, []orb.Point{a, b}, destinations)
	if err != nil {
		srv.log(ctx).Error("Distance matrix failed", slog.Int("destinations", len(destinations)), slog.Any("error", err))

		return nil, 0, domainerrors.NewUpstreamError(opDistanceMatrix, err)
	}

	matches := make([]entity.Match, 0, len(batch))
	skipped := 0
	for j, v := range batch {
		fromA, okA := matrix.At(0, j)
		fromB, okB := matrix.At(1, j)
		if !okA || !okB || !fromA.Reachable || !fromB.Reachable {
			skipped++
			srv.log(ctx).Warn("Skipping venue without walking route",
				slog.String("place_id", v.PlaceID),
				slog.String("name", v.Name),
			)

			continue
		}

		if fromA.Within(maxMinutes) && fromB.Within(maxMinutes) {
			matches = append(matches, entity.NewMatch(v, fromA, fromB, srv.mapsHost))
		}
	}

	return matches, skipped, nil
}

func validateFindMatchesInput(input *usecase.FindMatchesInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails(domainerrors.Details{"input": "is required"})
	}
	if strings.TrimSpace(input.OriginA) == "" {
		return domainerrors.ErrValidationFailed.WithDetails(domainerrors.Details{"origin_a": "is required"})
	}
	if strings.TrimSpace(input.OriginB) == "" {
		return domainerrors.ErrValidationFailed.WithDetails(domainerrors.Details{"origin_b": "is required"})
	}
	if input.MaxMinutes <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails(domainerrors.Details{"max_minutes": "must be positive"})
	}
	if input.MinRating < 0 || input.MinRating > maxRating {
		return domainerrors.ErrValidationFailed.WithDetails(domainerrors.Details{"min_rating": "must be between 0 and 5"})
	}
	for _, c := range input.Cuisines {
		if strings.TrimSpace(c) != "" && !entity.IsCuisine(c) {
			return domainerrors.ErrUnknownCuisine.WithDetails(domainerrors.Details{"cuisine": c})
		}
	}

	return nil
}
