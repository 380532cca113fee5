package maps

import (
	"context"
	"log/slog"
	"time"

	"meetup/config"
	"meetup/internal/domain/entity"
	"meetup/internal/domain/service"
	"meetup/internal/errors"

	"github.com/paulmach/orb"
	gmaps "googlemaps.github.io/maps"
)

const elementStatusOK = "OK"

type distanceMatrix struct {
	client  *gmaps.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewDistanceMatrix creates the Distance Matrix API adapter.
func NewDistanceMatrix(client *gmaps.Client, cfg *config.Config, logger *slog.Logger) service.TravelTimeCalculator {
	d := &distanceMatrix{client: client, logger: logger}
	if cfg.Maps != nil {
		d.timeout = cfg.Maps.RequestTimeout
	}

	return d
}

// WalkingMatrix requests walking durations for every origin and destination
// pair. Elements whose status is not OK are returned as unreachable.
func (d *distanceMatrix) WalkingMatrix(ctx context.Context, origins, destinations []orb.Point) (*service.TravelTimeMatrix, error) {
	if len(destinations) > service.MaxMatrixDestinations {
		return nil, errors.Errorf("distance matrix accepts at most %d destinations, got %d", service.MaxMatrixDestinations, len(destinations))
	}
	if len(origins) == 0 || len(destinations) == 0 {
		return &service.TravelTimeMatrix{}, nil
	}

	reqCtx, cancel := requestContext(ctx, d.timeout)
	defer cancel()

	resp, err := d.client.DistanceMatrix(reqCtx, &gmaps.DistanceMatrixRequest{
		Origins:      formatPoints(origins),
		Destinations: formatPoints(destinations),
		Mode:         gmaps.TravelModeWalking,
	})
	if err != nil {
		return nil, errors.Wrap(err, "maps.DistanceMatrix")
	}

	matrix := &service.TravelTimeMatrix{Rows: make([][]entity.TravelTime, len(resp.Rows))}
	for i, row := range resp.Rows {
		matrix.Rows[i] = make([]entity.TravelTime, len(row.Elements))
		for j, el := range row.Elements {
			if el == nil || el.Status != elementStatusOK {
				continue
			}
			matrix.Rows[i][j] = entity.TravelTime{Duration: el.Duration, Reachable: true}
		}
	}

	return matrix, nil
}

func formatPoints(points []orb.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = formatLatLng(p)
	}

	return out
}
