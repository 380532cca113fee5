package service

import (
	"context"

	"meetup/internal/domain/entity"

	"github.com/paulmach/orb"
)

// MaxMatrixDestinations is the provider limit on destinations per request.
const MaxMatrixDestinations = 25

// TravelTimeMatrix holds walking times indexed [origin][destination].
type TravelTimeMatrix struct {
	Rows [][]entity.TravelTime
}

// At returns the element for origin i and destination j. ok is false when
// the provider response did not include that element.
func (m *TravelTimeMatrix) At(i, j int) (entity.TravelTime, bool) {
	if m == nil || i < 0 || i >= len(m.Rows) || j < 0 || j >= len(m.Rows[i]) {
		return entity.TravelTime{}, false
	}

	return m.Rows[i][j], true
}

// TravelTimeCalculator computes walking durations between point sets.
type TravelTimeCalculator interface {
	// WalkingMatrix returns durations from every origin to every destination.
	// More than MaxMatrixDestinations destinations is rejected.
	WalkingMatrix(ctx context.Context, origins, destinations []orb.Point) (*TravelTimeMatrix, error)
}
