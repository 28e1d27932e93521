package jwtmw

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys under which the middleware stores the authenticated identity.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextEmail    = "email"
)

// AuthRequired returns a Gin middleware function that validates bearer JWT
// tokens and restricts access to authenticated users. The token's signature,
// expiry and, when configured, issuer and audience are all checked.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Load secret key from environment variable
		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// Server misconfiguration (JWT_SECRET not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 3. Parse and verify the signature, plus issuer/audience when configured
		var opts []jwt.ParserOption
		if issuer := os.Getenv(EnvKeyJWTIssuer); issuer != "" {
			opts = append(opts, jwt.WithIssuer(issuer))
		}
		if audience := os.Getenv(EnvKeyJWTAudience); audience != "" {
			opts = append(opts, jwt.WithAudience(audience))
		}
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}, opts...)
		if err != nil || !token.Valid {
			// Validation error or invalid token
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 4. Extract identity claims (payload)
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JWT numbers are decoded as float64
				c.Set(ContextUserID, uint(sub))
			}
			if name, ok := claims["given_name"].(string); ok {
				c.Set(ContextUsername, name)
			}
			if email, ok := claims["email"].(string); ok {
				c.Set(ContextEmail, email)
			}
		}
		// 5. Pass control to the next handler
		c.Next()
	}
}
