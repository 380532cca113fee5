package maps

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"meetup/config"
	deliverycontext "meetup/internal/delivery/context"
	"meetup/internal/domain/entity"
	"meetup/internal/domain/service"
	"meetup/internal/errors"

	gmaps "googlemaps.github.io/maps"
)

// maxNearbyRadius is the largest radius the Places API accepts.
const maxNearbyRadius = 50000

type placesSearcher struct {
	client   *gmaps.Client
	timeout  time.Duration
	language string
	logger   *slog.Logger
}

// NewPlacesSearcher creates the Places Nearby Search adapter.
func NewPlacesSearcher(client *gmaps.Client, cfg *config.Config, logger *slog.Logger) service.VenueSearcher {
	p := &placesSearcher{client: client, logger: logger}
	if cfg.Maps != nil {
		p.timeout = cfg.Maps.RequestTimeout
		p.language = cfg.Maps.Language
	}

	return p
}

// SearchNearby fetches one page of venues. Records without a place id, a
// name or coordinates are dropped and counted in Skipped.
func (p *placesSearcher) SearchNearby(ctx context.Context, req *service.VenueSearchRequest) (*service.VenueSearchPage, error) {
	if req == nil {
		return nil, errors.New("nil venue search request")
	}

	reqCtx, cancel := requestContext(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.NearbySearch(reqCtx, &gmaps.NearbySearchRequest{
		Location:  toLatLng(req.Center),
		Radius:    radiusMeters(req.RadiusMeters),
		Keyword:   req.Keyword,
		Type:      gmaps.PlaceType(req.Category),
		PageToken: req.PageToken,
		Language:  p.language,
	})
	if isZeroResults(err) {
		return &service.VenueSearchPage{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "maps.NearbySearch")
	}

	page := &service.VenueSearchPage{
		Venues:        make([]entity.Venue, 0, len(resp.Results)),
		NextPageToken: resp.NextPageToken,
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	for _, r := range resp.Results {
		venue, ok := toVenue(r)
		if !ok {
			page.Skipped++
			logger.Warn("Skipping malformed place record",
				slog.String("place_id", r.PlaceID),
				slog.String("name", r.Name),
			)

			continue
		}
		page.Venues = append(page.Venues, venue)
	}

	return page, nil
}

func toVenue(r gmaps.PlacesSearchResult) (entity.Venue, bool) {
	loc := r.Geometry.Location
	if strings.TrimSpace(r.PlaceID) == "" || strings.TrimSpace(r.Name) == "" || (loc.Lat == 0 && loc.Lng == 0) {
		return entity.Venue{}, false
	}

	return entity.Venue{
		PlaceID:  r.PlaceID,
		Name:     r.Name,
		Point:    toPoint(loc),
		Rating:   float64(r.Rating),
		Vicinity: r.Vicinity,
	}, true
}

// radiusMeters rounds up to whole metres so a larger input never yields a
// smaller search area, clamped to the provider limit.
func radiusMeters(r float64) uint {
	if r <= 0 || math.IsNaN(r) {
		return 0
	}

	return uint(min(math.Ceil(r), maxNearbyRadius))
}
