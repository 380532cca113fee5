package impl

import (
	"context"
	"log/slog"
	"strings"

	"meetup/config"
	deliverycontext "meetup/internal/delivery/context"
	domainerrors "meetup/internal/domain/errors"
	"meetup/internal/domain/service"
	"meetup/internal/usecase"
)

// accessService implements the AccessUsecase interface: a single shared
// password exchanged for a short-lived signed session token.
type accessService struct {
	hasher       service.PasswordHasher
	tokens       service.TokenService
	passwordHash string
	logger       *slog.Logger
}

// NewAccessService is the constructor for accessService. The token service
// may be nil when the gate is disabled.
func NewAccessService(
	hasher service.PasswordHasher,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccessUsecase {
	srv := &accessService{
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
	if cfg.Access.Enabled() {
		srv.passwordHash = strings.TrimSpace(cfg.Access.PasswordHash)
	}

	return srv
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enabled reports whether a password has been configured.
func (srv *accessService) Enabled() bool {
	return srv.passwordHash != ""
}

// Login checks password against the configured hash and issues a session.
func (srv *accessService) Login(ctx context.Context, password string) (*usecase.Session, error) {
	if !srv.Enabled() {
		return nil, domainerrors.ErrAccessGateDisabled
	}

	if !srv.hasher.Check(password, srv.passwordHash) {
		srv.log(ctx).Warn("Rejected access attempt with wrong password")

		return nil, domainerrors.ErrInvalidPassword
	}

	token, expiresAt, err := srv.tokens.GenerateSessionToken()
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	srv.log(ctx).Info("Session granted", slog.Time("expires_at", expiresAt))

	return &usecase.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Authorize accepts any request when the gate is disabled, otherwise the
// token must validate.
func (srv *accessService) Authorize(ctx context.Context, token string) error {
	if !srv.Enabled() {
		return nil
	}
	if token == "" {
		return domainerrors.ErrSessionRequired
	}

	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return domainerrors.ErrSessionInvalid
	}

	srv.log(ctx).Debug("Session token accepted", slog.String("session_id", claims.SessionID))

	return nil
}
