// Package auth provides the token and password services of the access gate.
package auth

import (
	"time"

	"meetup/config"
	"meetup/internal/domain/service"
	"meetup/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionIssuer = "meetup"

// jwtService issues HS256 session tokens.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates the token service from the access configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Access == nil || cfg.Access.TokenSecret == "" {
		return nil, errors.New("access.tokenSecret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Access.TokenSecret),
		ttl:    cfg.Access.TokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateSessionToken signs a token with a fresh session id as subject.
func (s *jwtService) GenerateSessionToken() (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	sessionID := uuid.New().String()

	claims := &service.Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}

	return token, expiresAt, nil
}

// ValidateToken parses tokenString and checks signature, issuer and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}

	return claims, nil
}
