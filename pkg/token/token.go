package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt reads the exp claim of an upstream-issued bearer token without
// verifying the signature; the clinic platform holds the signing key, the
// gateway only needs the expiry to size its session TTL. Returns false when
// the token is not a parseable JWT or carries no expiry.
func ExpiresAt(tokenString string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// RemainingTTL clamps a configured session TTL to the token's own lifetime.
// A session must not outlive the bearer token it wraps.
func RemainingTTL(tokenString string, configured time.Duration, now time.Time) time.Duration {
	exp, ok := ExpiresAt(tokenString)
	if !ok {
		return configured
	}

	remaining := exp.Sub(now)
	if remaining <= 0 {
		return 0
	}
	if remaining < configured {
		return remaining
	}
	return configured
}
