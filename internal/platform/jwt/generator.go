// Package jwtmw provides JWT issuance and the Gin authentication middleware.
package jwtmw

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Environment variable keys for the token configuration.
const (
	EnvKeyJWTSecret     = "JWT_SECRET"
	EnvKeyJWTIssuer     = "JWT_ISSUER"
	EnvKeyJWTAudience   = "JWT_AUDIENCE"
	EnvKeyJWTExpiration = "JWT_EXPIRATION"
)

// DefaultExpiration is the token validity window when JWT_EXPIRATION is unset.
const DefaultExpiration = 7 * 24 * time.Hour

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, username, email string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	issuer     string
	audience   string
	expiration time.Duration
}

// NewGenerator creates a new JWT generator. Issuer and audience are embedded
// as claims when non-empty; expiration falls back to DefaultExpiration when
// not positive.
func NewGenerator(secret, issuer, audience string, expiration time.Duration) *generator {
	if expiration <= 0 {
		expiration = DefaultExpiration
	}
	return &generator{
		secret:     []byte(secret),
		issuer:     issuer,
		audience:   audience,
		expiration: expiration,
	}
}

// NewGeneratorFromEnv builds a generator from the JWT_* environment
// variables. JWT_EXPIRATION accepts time.ParseDuration syntax (e.g. "168h").
func NewGeneratorFromEnv() *generator {
	expiration := DefaultExpiration
	if raw := os.Getenv(EnvKeyJWTExpiration); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			expiration = d
		}
	}
	return NewGenerator(
		os.Getenv(EnvKeyJWTSecret),
		os.Getenv(EnvKeyJWTIssuer),
		os.Getenv(EnvKeyJWTAudience),
		expiration,
	)
}

// GenerateToken creates an HMAC-SHA512 signed JWT carrying the user's
// identity claims: subject id, username (given_name) and email. Issuance has
// no side effects beyond signing; no session state is persisted.
func (g *generator) GenerateToken(userID uint, username, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        userID,
		"given_name": username,
		"email":      email,
		"iat":        now.Unix(),
		"exp":        now.Add(g.expiration).Unix(),
	}
	if g.issuer != "" {
		claims["iss"] = g.issuer
	}
	if g.audience != "" {
		claims["aud"] = g.audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
