package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-0123456789abcdef"

// parseClaims verifies the signature with the test secret and returns the claims.
func parseClaims(t *testing.T, signed string) jwt.MapClaims {
	t.Helper()

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type %T", token.Claims)
	}
	return claims
}

func TestGenerator_GenerateToken(t *testing.T) {
	g := NewGenerator(testSecret, "stocktrack", "stocktrack-clients", time.Hour)

	signed, err := g.GenerateToken(42, "alice", "alice@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseClaims(t, signed)

	if sub, _ := claims["sub"].(float64); uint(sub) != 42 {
		t.Errorf("expected sub 42, got %v", claims["sub"])
	}
	if claims["given_name"] != "alice" {
		t.Errorf("expected given_name alice, got %v", claims["given_name"])
	}
	if claims["email"] != "alice@x.com" {
		t.Errorf("expected email alice@x.com, got %v", claims["email"])
	}
	if claims["iss"] != "stocktrack" {
		t.Errorf("expected issuer stocktrack, got %v", claims["iss"])
	}
	if claims["aud"] != "stocktrack-clients" {
		t.Errorf("expected audience stocktrack-clients, got %v", claims["aud"])
	}
}

func TestGenerator_SigningMethod(t *testing.T) {
	g := NewGenerator(testSecret, "", "", time.Hour)

	signed, err := g.GenerateToken(1, "alice", "alice@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			t.Errorf("expected HS512, got %s", tok.Method.Alg())
		}
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
}

func TestGenerator_OmitsIssuerAndAudienceWhenUnconfigured(t *testing.T) {
	g := NewGenerator(testSecret, "", "", time.Hour)

	signed, err := g.GenerateToken(1, "alice", "alice@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseClaims(t, signed)
	if _, ok := claims["iss"]; ok {
		t.Error("issuer claim present without configuration")
	}
	if _, ok := claims["aud"]; ok {
		t.Error("audience claim present without configuration")
	}
}

func TestGenerator_ExpiryWindow(t *testing.T) {
	g := NewGenerator(testSecret, "", "", time.Hour)

	before := time.Now()
	signed, err := g.GenerateToken(1, "alice", "alice@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now()

	claims := parseClaims(t, signed)
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)

	if int64(exp)-int64(iat) != int64(time.Hour/time.Second) {
		t.Errorf("expected a one hour window, got %d seconds", int64(exp)-int64(iat))
	}
	if int64(iat) < before.Unix() || int64(iat) > after.Unix() {
		t.Errorf("iat %d outside issuance interval [%d, %d]", int64(iat), before.Unix(), after.Unix())
	}
}

func TestNewGenerator_DefaultExpiration(t *testing.T) {
	g := NewGenerator(testSecret, "", "", 0)

	signed, err := g.GenerateToken(1, "alice", "alice@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseClaims(t, signed)
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)

	if int64(exp)-int64(iat) != int64(DefaultExpiration/time.Second) {
		t.Errorf("expected the default window, got %d seconds", int64(exp)-int64(iat))
	}
}

func TestNewGeneratorFromEnv(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, testSecret)
	t.Setenv(EnvKeyJWTIssuer, "stocktrack")
	t.Setenv(EnvKeyJWTAudience, "stocktrack-clients")
	t.Setenv(EnvKeyJWTExpiration, "30m")

	g := NewGeneratorFromEnv()

	signed, err := g.GenerateToken(7, "bob", "bob@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseClaims(t, signed)
	if claims["iss"] != "stocktrack" {
		t.Errorf("issuer not taken from environment: %v", claims["iss"])
	}
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if int64(exp)-int64(iat) != 1800 {
		t.Errorf("expiration not taken from environment: %d seconds", int64(exp)-int64(iat))
	}
}
