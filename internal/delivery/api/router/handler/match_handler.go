package handler

import (
	"log/slog"
	"net/http"

	"meetup/internal/delivery/api/presenter"
	"meetup/internal/delivery/api/response"
	"meetup/internal/delivery/api/validator"
	"meetup/internal/domain/entity"
	domainerrors "meetup/internal/domain/errors"
	"meetup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MatchHandlerParams holds dependencies for MatchHandler, injected by Fx.
type MatchHandlerParams struct {
	fx.In

	MatchUC usecase.MatchUsecase
	Logger  *slog.Logger
}

// MatchHandler serves the meetup search endpoints
type MatchHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler
func NewMatchHandler(params MatchHandlerParams) *MatchHandler {
	return &MatchHandler{
		matchUC: params.MatchUC,
		logger:  params.Logger,
	}
}

// FindMatchesRequest represents the search form
type FindMatchesRequest struct {
	OriginA    string   `json:"origin_a" validate:"required,max=300"`
	OriginB    string   `json:"origin_b" validate:"required,max=300"`
	MaxMinutes int      `json:"max_minutes" validate:"min=5,max=30"`
	MinRating  int      `json:"min_rating" validate:"min=0,max=5"`
	Cuisines   []string `json:"cuisines" validate:"max=32,dive,cuisine"`
}

// ListCuisines returns the supported cuisine vocabulary
func (h *MatchHandler) ListCuisines(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"any":      entity.AnyCuisine,
		"cuisines": entity.Cuisines,
	})
}

// FindMatches runs a search and returns the results table
func (h *MatchHandler) FindMatches(c echo.Context) error {
	result, err := h.find(c)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	return response.Success(c, http.StatusOK, presenter.NewMatchResultResponse(result))
}

// FindMatchesGeoJSON runs a search and returns the map markers as GeoJSON
func (h *MatchHandler) FindMatchesGeoJSON(c echo.Context) error {
	result, err := h.find(c)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	return c.JSON(http.StatusOK, presenter.NewMatchFeatureCollection(result))
}

// find binds, validates and runs the search. A nil result with a nil error
// means an error response has already been written.
func (h *MatchHandler) find(c echo.Context) (*usecase.MatchResult, error) {
	var req FindMatchesRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validator.Describe(err),
		)
	}

	result, err := h.matchUC.FindMatches(c.Request().Context(), &usecase.FindMatchesInput{
		OriginA:    req.OriginA,
		OriginB:    req.OriginB,
		MaxMinutes: req.MaxMinutes,
		MinRating:  req.MinRating,
		Cuisines:   req.Cuisines,
	})
	if err != nil {
		return nil, response.HandleAppError(c, err)
	}

	return result, nil
}
