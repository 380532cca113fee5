package handler

import (
	"net/http"
	"time"

	"meetup/internal/delivery/api/response"
	domainerrors "meetup/internal/domain/errors"
	"meetup/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler exchanges the shared password for a session token
type SessionHandler struct {
	accessUC usecase.AccessUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(accessUC usecase.AccessUsecase) *SessionHandler {
	return &SessionHandler{accessUC: accessUC}
}

// CreateSessionRequest represents the login form
type CreateSessionRequest struct {
	Password string `json:"password" validate:"required,max=256"`
}

// SessionResponse is returned on a successful login
type SessionResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateSession handles POST /auth/session
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Password is required")
	}

	session, err := h.accessUC.Login(c.Request().Context(), req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SessionResponse{
		Token:     session.Token,
		TokenType: "Bearer",
		ExpiresAt: session.ExpiresAt,
	})
}
