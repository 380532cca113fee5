// Package service defines interfaces for core, stateless domain logic.
// The maps provider is reached only through these ports.
package service

import (
	"context"

	"meetup/internal/domain/entity"
)

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	// Geocode returns the best candidate for query, or nil and no error when
	// the provider has no result. Transport and provider failures are
	// returned as errors.
	Geocode(ctx context.Context, query string) (*entity.Location, error)
}
