package maps

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"meetup/config"
	deliverycontext "meetup/internal/delivery/context"
	"meetup/internal/domain/entity"
	"meetup/internal/domain/service"
	"meetup/internal/errors"

	gmaps "googlemaps.github.io/maps"
)

type geocoder struct {
	client   *gmaps.Client
	timeout  time.Duration
	language string
	logger   *slog.Logger
}

// NewGeocoder creates the Geocoding API adapter.
func NewGeocoder(client *gmaps.Client, cfg *config.Config, logger *slog.Logger) service.Geocoder {
	g := &geocoder{client: client, logger: logger}
	if cfg.Maps != nil {
		g.timeout = cfg.Maps.RequestTimeout
		g.language = cfg.Maps.Language
	}

	return g
}

// Geocode returns the first candidate the provider ranks for query.
func (g *geocoder) Geocode(ctx context.Context, query string) (*entity.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	reqCtx, cancel := requestContext(ctx, g.timeout)
	defer cancel()

	results, err := g.client.Geocode(reqCtx, &gmaps.GeocodingRequest{
		Address:  query,
		Language: g.language,
	})
	if isZeroResults(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "maps.Geocode")
	}
	if len(results) == 0 {
		return nil, nil
	}

	first := results[0]
	if len(results) > 1 {
		deliverycontext.GetLoggerOrDefault(ctx, g.logger).Debug("Geocode returned several candidates, using the first",
			slog.Int("candidates", len(results)),
			slog.String("formatted_address", first.FormattedAddress),
		)
	}

	loc := first.Geometry.Location

	return entity.NewLocation(query, loc.Lat, loc.Lng, first.FormattedAddress), nil
}
