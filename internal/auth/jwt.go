package auth

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"

	bearerPrefix = "Bearer "
)

// credentialKeys are attribute names never embedded in a signed token.
var credentialKeys = []string{"password", "password_hash", "passwordhash"}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// RefreshClaims is the verified content of a refresh token.
type RefreshClaims struct {
	Subject   uuid.UUID
	Nonce     string
	ExpiresAt time.Time
}

// accessClaims carries the identity of a staff member.
type accessClaims struct {
	jwt.RegisteredClaims
	Type       string         `json:"typ"`
	Email      string         `json:"email,omitempty"`
	Name       string         `json:"name,omitempty"`
	Role       string         `json:"role,omitempty"`
	Attributes map[string]any `json:"attrs,omitempty"`
}

// refreshClaims carries only a subject and a nonce (the jti).
type refreshClaims struct {
	jwt.RegisteredClaims
	Type string `json:"typ"`
}

// TokenIssuer signs and verifies HS256 session tokens. Access and refresh
// tokens use separate secrets so one cannot be replayed as the other.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenIssuer creates a token issuer.
// Both secrets must be at least 32 characters for HS256 security.
func NewTokenIssuer(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// WithClock returns a copy of the issuer that reads time from now.
func (m *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	cp := *m
	cp.now = now
	return &cp
}

// IssueTokens signs a new access/refresh pair for id.
func (m *TokenIssuer) IssueTokens(id domain.Identity) (TokenPair, error) {
	now := m.now()
	accessExp := now.Add(m.accessTTL)
	refreshExp := now.Add(m.refreshTTL)

	access := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(accessExp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Type:       typeAccess,
		Email:      id.Email,
		Name:       id.Name,
		Role:       string(id.Role),
		Attributes: stripCredentials(id.Attributes),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, access).SignedString(m.accessSecret)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh := refreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID.String(),
			Issuer:    m.issuer,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(refreshExp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Type: typeRefresh,
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refresh).SignedString(m.refreshSecret)
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// VerifyAccess validates an Authorization header value of the form
// "Bearer <token>". A missing or malformed header yields ErrUnauthenticated;
// a bad token yields ErrInvalidToken or ErrTokenExpired.
func (m *TokenIssuer) VerifyAccess(header string) (domain.Identity, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if raw == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	var claims accessClaims
	if err := m.parse(raw, &claims, m.accessSecret); err != nil {
		return domain.Identity{}, err
	}
	if claims.Type != typeAccess {
		return domain.Identity{}, fmt.Errorf("%w: unexpected token type %q", domain.ErrInvalidToken, claims.Type)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: invalid subject: %v", domain.ErrInvalidToken, err)
	}

	return domain.Identity{
		ID:         id,
		Email:      claims.Email,
		Name:       claims.Name,
		Role:       domain.StaffRole(claims.Role),
		Attributes: claims.Attributes,
	}, nil
}

// VerifyRefresh validates a raw refresh token with the same failure
// distinction as VerifyAccess.
func (m *TokenIssuer) VerifyRefresh(token string) (RefreshClaims, error) {
	if token == "" {
		return RefreshClaims{}, domain.ErrUnauthenticated
	}

	var claims refreshClaims
	if err := m.parse(token, &claims, m.refreshSecret); err != nil {
		return RefreshClaims{}, err
	}
	if claims.Type != typeRefresh {
		return RefreshClaims{}, fmt.Errorf("%w: unexpected token type %q", domain.ErrInvalidToken, claims.Type)
	}
	if claims.ID == "" {
		return RefreshClaims{}, fmt.Errorf("%w: missing nonce", domain.ErrInvalidToken)
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return RefreshClaims{}, fmt.Errorf("%w: invalid subject: %v", domain.ErrInvalidToken, err)
	}

	return RefreshClaims{
		Subject:   sub,
		Nonce:     claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (m *TokenIssuer) parse(raw string, claims jwt.Claims, secret []byte) error {
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", domain.ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
}

func stripCredentials(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if isCredentialKey(k) {
			continue
		}
		out[k] = v
	}
	return out
}

func isCredentialKey(k string) bool {
	return slices.Contains(credentialKeys, strings.ToLower(k))
}
