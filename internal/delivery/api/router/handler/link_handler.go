package handler

import (
	"net/http"
	"strings"

	"meetup/config"
	"meetup/internal/delivery/api/response"
	"meetup/internal/domain/entity"
	"meetup/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// LinkHandler renders venue deep links for hand-off to a phone
type LinkHandler struct {
	qrcodeSvc service.QRCodeService
	mapsHost  string
}

// NewLinkHandler is the constructor for LinkHandler
func NewLinkHandler(qrcodeSvc service.QRCodeService, cfg *config.Config) *LinkHandler {
	h := &LinkHandler{qrcodeSvc: qrcodeSvc}
	if cfg.Maps != nil {
		h.mapsHost = cfg.Maps.MapsHost
	}

	return h
}

// GenerateLinkQR handles GET /api/v1/links/qr?name=&place_id= and returns a PNG
func (h *LinkHandler) GenerateLinkQR(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	placeID := strings.TrimSpace(c.QueryParam("place_id"))
	if name == "" || placeID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "name and place_id are required")
	}

	png, err := h.qrcodeSvc.GenerateLinkQR(entity.BuildMapsLink(h.mapsHost, name, placeID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
