package middleware

import (
	"strings"

	"meetup/internal/delivery/api/response"
	"meetup/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// SessionMiddleware enforces the optional password gate on API routes.
type SessionMiddleware struct {
	access usecase.AccessUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(access usecase.AccessUsecase) *SessionMiddleware {
	return &SessionMiddleware{access: access}
}

// Authenticate passes every request through when no password is configured.
// Otherwise it requires "Authorization: Bearer <token>" with a valid token.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.access.Enabled() {
			return next(c)
		}

		if err := m.access.Authorize(c.Request().Context(), bearerToken(c)); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}

	return strings.TrimSpace(header[len(bearerPrefix):])
}
