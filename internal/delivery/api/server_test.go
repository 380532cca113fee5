package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meetup/config"
	"meetup/internal/delivery/api/middleware"
	"meetup/internal/delivery/api/router"
	"meetup/internal/delivery/api/router/handler"
	deliverycontext "meetup/internal/delivery/context"
	"meetup/internal/domain/entity"
	domainerrors "meetup/internal/domain/errors"
	"meetup/internal/errors"
	mockSvc "meetup/internal/mocks/service"
	mockUC "meetup/internal/mocks/usecase"
	"meetup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo   *echo.Echo
	match  *mockUC.MockMatchUsecase
	access *mockUC.MockAccessUsecase
	qrcode *mockSvc.MockQRCodeService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{Maps: &config.MapsConfig{MapsHost: "www.google.com"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := &testAPI{
		match:  mockUC.NewMockMatchUsecase(t),
		access: mockUC.NewMockAccessUsecase(t),
		qrcode: mockSvc.NewMockQRCodeService(t),
	}

	api.echo = NewEcho(cfg, logger, router.RouterParams{
		MatchHandler:      handler.NewMatchHandler(handler.MatchHandlerParams{MatchUC: api.match, Logger: logger}),
		SessionHandler:    handler.NewSessionHandler(api.access),
		LinkHandler:       handler.NewLinkHandler(api.qrcode, cfg),
		SessionMiddleware: middleware.NewSessionMiddleware(api.access),
	})

	return api
}

func (a *testAPI) openGate() {
	a.access.EXPECT().Enabled().Return(false).Maybe()
}

func (a *testAPI) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func sampleResult() *usecase.MatchResult {
	return &usecase.MatchResult{
		OriginA:      *entity.NewLocation("Union Square", 40.7359, -73.9911, "Union Square, New York"),
		OriginB:      *entity.NewLocation("Madison Square Park", 40.7420, -73.9880, ""),
		RadiusMeters: 1440,
		Matches: []entity.Match{{
			PlaceID:      "p1",
			Name:         "Cafe Uno",
			Rating:       4.5,
			MinutesFromA: 6.04,
			MinutesFromB: 9.96,
			Point:        orb.Point{-73.989, 40.739},
			MapsURL:      entity.BuildMapsLink("www.google.com", "Cafe Uno", "p1"),
		}},
		CandidateCount: 12,
		RatedCount:     5,
	}
}

const validSearch = `{"origin_a":"Union Square","origin_b":"Madison Square Park","max_minutes":15,"min_rating":4,"cuisines":["Thai","Pizza"]}`

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_ListCuisines(t *testing.T) {
	api := newTestAPI(t)
	api.openGate()

	rec := api.do(http.MethodGet, "/api/v1/cuisines", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Any      string   `json:"any"`
		Cuisines []string `json:"cuisines"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "Any", data.Any)
	assert.Contains(t, data.Cuisines, "Middle Eastern")
}

func TestAPI_FindMatches(t *testing.T) {
	api := newTestAPI(t)
	api.openGate()

	api.match.EXPECT().FindMatches(mock.Anything, &usecase.FindMatchesInput{
		OriginA:    "Union Square",
		OriginB:    "Madison Square Park",
		MaxMinutes: 15,
		MinRating:  4,
		Cuisines:   []string{"Thai", "Pizza"},
	}).Return(sampleResult(), nil).Once()

	rec := api.do(http.MethodPost, "/api/v1/matches", validSearch, deliverycontext.HeaderXRequestID, "req-42")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	env := decode(t, rec)
	assert.Equal(t, "req-42", env.Meta.RequestID)

	var data struct {
		Outcome string `json:"outcome"`
		Matches []struct {
			Name         string  `json:"name"`
			MinutesFromA float64 `json:"minutes_from_a"`
			MinutesFromB float64 `json:"minutes_from_b"`
			MapsURL      string  `json:"maps_url"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "matched", data.Outcome)
	require.Len(t, data.Matches, 1)
	assert.Equal(t, 6.0, data.Matches[0].MinutesFromA)
	assert.Equal(t, 10.0, data.Matches[0].MinutesFromB)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Cafe%20Uno&query_place_id=p1", data.Matches[0].MapsURL)
}

func TestAPI_FindMatches_NoMatchesIsSuccess(t *testing.T) {
	api := newTestAPI(t)
	api.openGate()

	result := sampleResult()
	result.Matches = []entity.Match{}
	api.match.EXPECT().FindMatches(mock.Anything, mock.Anything).Return(result, nil).Once()

	rec := api.do(http.MethodPost, "/api/v1/matches", validSearch)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"no_matches"`)
}

func TestAPI_FindMatches_ValidationFailed(t *testing.T) {
	api := newTestAPI(t)
	api.openGate()

	rec := api.do(http.MethodPost, "/api/v1/matches", `{"origin_a":"","origin_b":"B","max_minutes":90,"min_rating":4,"cuisines":["Martian"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "origin_a")
	assert.Contains(t, env.Error.Details, "max_minutes")
	assert.Contains(t, env.Error.Details, "cuisines[0]")
}

func TestAPI_FindMatches_InvalidJSON(t *testing.T) {
	api := newTestAPI(t)
	api.openGate()

	rec := api.do(http.MethodPost, "/api/v1/matches", `{"origin_a":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}

func TestAPI_FindMatches_ErrorOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails map[string]string
	}{
		{
			name:        "location not found",
			err:         domainerrors.NewLocationNotFoundError(domainerrors.OriginB, "Atlantis"),
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    "LOCATION_NOT_FOUND",
			wantDetails: map[string]string{"origin": "B", "query": "Atlantis"},
		},
		{
			name:        "unknown cuisine",
			err:         domainerrors.ErrUnknownCuisine.WithDetails(domainerrors.Details{"cuisine": "Martian"}),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "UNKNOWN_CUISINE",
			wantDetails: map[string]string{"cuisine": "Martian"},
		},
		{
			name:       "upstream unavailable",
			err:        domainerrors.NewUpstreamError("distance matrix", errors.New("OVER_QUERY_LIMIT")),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_UNAVAILABLE",
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.openGate()
			api.match.EXPECT().FindMatches(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := api.do(http.MethodPost, "/api/v1/matches", validSearch)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Equal(t, tt.wantDetails, env.Error.Details)
			assert.NotContains(t, rec.Body.String(), "OVER_QUERY_LIMIT")
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestAPI_FindMatchesGeoJSON(t *testing.T) {
	api := newTestAPI(t)
	api.openGate()
	api.match.EXPECT().FindMatches(mock.Anything, mock.Anything).Return(sampleResult(), nil).Once()

	rec := api.do(http.MethodPost, "/api/v1/matches/geojson", validSearch)
	require.Equal(t, http.StatusOK, rec.Code)

	var fc struct {
		Type     string    `json:"type"`
		BBox     []float64 `json:"bbox"`
		Center   []float64 `json:"center"`
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.BBox, 4)
	assert.Len(t, fc.Center, 2)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "venue", fc.Features[2].Properties["kind"])
}

func TestAPI_LinkQR(t *testing.T) {
	api := newTestAPI(t)
	api.openGate()
	api.qrcode.EXPECT().
		GenerateLinkQR("https://www.google.com/maps/search/?api=1&query=Cafe%20Uno&query_place_id=p1").
		Return([]byte("\x89PNG"), nil).Once()

	rec := api.do(http.MethodGet, "/api/v1/links/qr?name=Cafe+Uno&place_id=p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())

	rec = api.do(http.MethodGet, "/api/v1/links/qr?name=Cafe+Uno", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_PasswordGate(t *testing.T) {
	api := newTestAPI(t)
	api.access.EXPECT().Enabled().Return(true)

	api.access.EXPECT().Authorize(mock.Anything, "").Return(domainerrors.ErrSessionRequired).Once()
	rec := api.do(http.MethodGet, "/api/v1/cuisines", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "SESSION_REQUIRED", decode(t, rec).Error.Code)

	api.access.EXPECT().Authorize(mock.Anything, "stale").Return(domainerrors.ErrSessionInvalid).Once()
	rec = api.do(http.MethodGet, "/api/v1/cuisines", "", echo.HeaderAuthorization, "Bearer stale")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	api.access.EXPECT().Authorize(mock.Anything, "fresh").Return(nil).Once()
	rec = api.do(http.MethodGet, "/api/v1/cuisines", "", echo.HeaderAuthorization, "bearer fresh")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health stays public.
	rec = api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_CreateSession(t *testing.T) {
	api := newTestAPI(t)
	expiresAt := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	api.access.EXPECT().Login(mock.Anything, "open sesame").
		Return(&usecase.Session{Token: "signed.token", ExpiresAt: expiresAt}, nil).Once()
	rec := api.do(http.MethodPost, "/auth/session", `{"password":"open sesame"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var data handler.SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "signed.token", data.Token)
	assert.Equal(t, "Bearer", data.TokenType)
	assert.True(t, expiresAt.Equal(data.ExpiresAt))

	api.access.EXPECT().Login(mock.Anything, "wrong").Return(nil, domainerrors.ErrInvalidPassword).Once()
	rec = api.do(http.MethodPost, "/auth/session", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(http.MethodPost, "/auth/session", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
