// Package session mints and verifies the HS256 JWTs that back the
// ClaimGuard browser session cookie.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Mahi-sheth/final-ClaimGuard/internal/pkg/config"
)

// CookieName is the cookie carrying the session token.
const CookieName = "cg_session"

// Claims captures the validated identity of a logged-in user.
type Claims struct {
	UserID    string
	Name      string
	Phone     string
	ExpiresAt time.Time
}

// sessionClaims is the internal claims type used for JWT parsing.
type sessionClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Manager issues and verifies session tokens.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a session Manager from auth settings.
func NewManager(settings *config.AuthSettings) (*Manager, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth settings: %w", err)
	}

	return &Manager{
		secret:   []byte(settings.SessionSecret),
		issuer:   settings.Issuer,
		audience: settings.Audience,
		ttl:      time.Duration(settings.SessionTTLMinutes) * time.Minute,
		now:      time.Now,
	}, nil
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Mint issues a signed session token for the given user identity.
func (m *Manager) Mint(userID, name, phone string) (string, time.Time, error) {
	if strings.TrimSpace(userID) == "" {
		return "", time.Time{}, errors.New("user id is required")
	}

	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Name:  name,
		Phone: phone,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify parses a session token and validates its signature and claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.New("session token is required")
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, errors.New("session token signature is invalid")
		}
		return nil, errors.New("session token is invalid")
	}

	if parsed.Issuer != m.issuer {
		return nil, errors.New("session token issuer mismatch")
	}
	if !audienceContains(parsed.Audience, m.audience) {
		return nil, errors.New("session token audience mismatch")
	}
	if parsed.Subject == "" {
		return nil, errors.New("session token subject is required")
	}
	if parsed.ExpiresAt == nil {
		return nil, errors.New("session token exp is required")
	}

	now := m.now().UTC()
	expiresAt := parsed.ExpiresAt.Time.UTC()
	if !expiresAt.After(now) {
		return nil, errors.New("session has expired")
	}
	if parsed.NotBefore != nil && now.Before(parsed.NotBefore.Time.UTC()) {
		return nil, errors.New("session token not active yet")
	}

	return &Claims{
		UserID:    parsed.Subject,
		Name:      parsed.Name,
		Phone:     parsed.Phone,
		ExpiresAt: expiresAt,
	}, nil
}

// audienceContains reports whether the audience list contains the given value.
func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}
