// Package security signs access and refresh tokens and hashes passwords.
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type accessClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	SessionID string `json:"sid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type jwtIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// NewJWTIssuer creates an HS256 TokenIssuer with separate access and refresh secrets
func NewJWTIssuer(settings *config.AuthSettings) (auth.TokenIssuer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &jwtIssuer{
		accessSecret:  []byte(settings.AccessTokenSecret),
		refreshSecret: []byte(settings.RefreshTokenSecret),
		accessTTL:     settings.AccessTokenTTL,
		refreshTTL:    settings.RefreshTokenTTL,
		issuer:        settings.Issuer,
		now:           time.Now,
	}, nil
}

func (j *jwtIssuer) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := j.now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (j *jwtIssuer) IssueAccessToken(user *auth.User, sessionID string) (string, error) {
	claims := accessClaims{
		Email:            user.Email,
		Role:             user.Role,
		SessionID:        sessionID,
		TokenType:        tokenTypeAccess,
		RegisteredClaims: j.registered(user.ID, j.accessTTL),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.accessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (j *jwtIssuer) IssueRefreshToken(user *auth.User, sessionID string) (string, error) {
	claims := refreshClaims{
		SessionID:        sessionID,
		TokenType:        tokenTypeRefresh,
		RegisteredClaims: j.registered(user.ID, j.refreshTTL),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, nil
}

func (j *jwtIssuer) parse(token string, claims jwt.Claims, secret []byte) error {
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return fmt.Errorf("%w: token expired", apperrors.ErrUnauthorized)
		}
		return fmt.Errorf("%w: invalid token: %v", apperrors.ErrUnauthorized, err)
	}
	return nil
}

func (j *jwtIssuer) ParseAccessToken(token string) (*auth.Claims, error) {
	var claims accessClaims
	if err := j.parse(token, &claims, j.accessSecret); err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess || claims.Subject == "" || claims.SessionID == "" {
		return nil, fmt.Errorf("%w: not an access token", apperrors.ErrUnauthorized)
	}
	return &auth.Claims{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		SessionID: claims.SessionID,
	}, nil
}

func (j *jwtIssuer) ParseRefreshToken(token string) (string, string, error) {
	var claims refreshClaims
	if err := j.parse(token, &claims, j.refreshSecret); err != nil {
		return "", "", err
	}
	if claims.TokenType != tokenTypeRefresh || claims.Subject == "" || claims.SessionID == "" {
		return "", "", fmt.Errorf("%w: not a refresh token", apperrors.ErrUnauthorized)
	}
	return claims.Subject, claims.SessionID, nil
}

func (j *jwtIssuer) AccessTTL() time.Duration {
	return j.accessTTL
}

func (j *jwtIssuer) RefreshTTL() time.Duration {
	return j.refreshTTL
}
