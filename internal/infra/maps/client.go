// Package maps adapts the Google Maps web services to the domain ports.
package maps

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"meetup/config"
	"meetup/internal/errors"

	"github.com/paulmach/orb"
	gmaps "googlemaps.github.io/maps"
)

// statusZeroResults is the provider status for a well-formed request that
// matched nothing. Depending on the endpoint the SDK surfaces it as an error.
const statusZeroResults = "ZERO_RESULTS"

// NewClient creates the Google Maps SDK client shared by all adapters.
func NewClient(cfg *config.Config) (*gmaps.Client, error) {
	if cfg.Maps == nil || strings.TrimSpace(cfg.Maps.APIKey) == "" {
		return nil, errors.New("maps.apiKey must be provided")
	}

	opts := []gmaps.ClientOption{
		gmaps.WithAPIKey(cfg.Maps.APIKey),
		gmaps.WithHTTPClient(&http.Client{Timeout: cfg.Maps.RequestTimeout}),
	}
	if cfg.Maps.BaseURL != "" {
		opts = append(opts, gmaps.WithBaseURL(strings.TrimSuffix(cfg.Maps.BaseURL, "/")))
	}

	client, err := gmaps.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "maps.NewClient")
	}

	return client, nil
}

// requestContext bounds a single provider call by the configured timeout.
func requestContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

func isZeroResults(err error) bool {
	return err != nil && strings.Contains(err.Error(), statusZeroResults)
}

func toLatLng(p orb.Point) *gmaps.LatLng {
	return &gmaps.LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

func toPoint(l gmaps.LatLng) orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// formatLatLng renders a point as "lat,lng" without losing precision.
func formatLatLng(p orb.Point) string {
	return strconv.FormatFloat(p.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(p.Lon(), 'f', -1, 64)
}
