// Package sharetoken issues and verifies the short-lived tokens that grant
// read access to a single naming result via a share link.
package sharetoken

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

// timeFuncMu serialises access to the package-level jwt.TimeFunc during Parse.
var timeFuncMu sync.Mutex

const (
	defaultTTL = 7 * 24 * time.Hour
	issuer     = "jakmyungso"
	audience   = "naming-share"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// audience, expiry, malformed claims.
var ErrInvalidToken = errors.New("sharetoken: invalid token")

// Codec signs and parses share tokens with a single HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// New constructs a Codec. A non-positive ttl falls back to seven days.
func New(secret string, ttl time.Duration) (*Codec, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("sharetoken: secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for the given naming.
func (c *Codec) Issue(namingID string, now time.Time) (string, time.Time, error) {
	if c == nil {
		return "", time.Time{}, errors.New("sharetoken: codec is nil")
	}
	namingID = strings.TrimSpace(namingID)
	if namingID == "" {
		return "", time.Time{}, errors.New("sharetoken: naming id is required")
	}

	now = now.UTC()
	expiresAt := now.Add(c.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Audience:  jwt.ClaimStrings{audience},
		Subject:   namingID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sharetoken: sign: %w", err)
	}
	return token, expiresAt, nil
}

// Parse verifies a token and returns the naming id it was issued for.
func (c *Codec) Parse(token string, now time.Time) (string, error) {
	if c == nil {
		return "", errors.New("sharetoken: codec is nil")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}

	// jwt/v4 has no per-parse time option; validation time comes from the
	// package-level TimeFunc.
	timeFuncMu.Lock()
	jwt.TimeFunc = func() time.Time { return now.UTC() }
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.secret, nil
	})
	jwt.TimeFunc = time.Now
	timeFuncMu.Unlock()
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if !claims.VerifyAudience(audience, true) || claims.Issuer != issuer {
		return "", ErrInvalidToken
	}
	namingID := strings.TrimSpace(claims.Subject)
	if namingID == "" {
		return "", ErrInvalidToken
	}
	return namingID, nil
}
