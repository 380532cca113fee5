package usecase

import (
	"context"
	"time"
)

// Session is a granted access session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AccessUsecase guards the API with an optional shared password.
type AccessUsecase interface {
	// Enabled reports whether a password has been configured.
	Enabled() bool

	// Login exchanges the shared password for a session token.
	Login(ctx context.Context, password string) (*Session, error)

	// Authorize validates a session token presented with a request.
	Authorize(ctx context.Context, token string) error
}
