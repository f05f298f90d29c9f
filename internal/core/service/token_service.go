package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopkeep/storefront/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens. It keeps no state:
// a token is valid until its exp claim passes.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// WithClock replaces time.Now for both issuing and verifying.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue returns a token for username and role expiring after ttl. A
// non-positive ttl falls back to 24h.
func (s *TokenService) Issue(username, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := s.now()
	claims := tokenClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify decodes token. Malformed, forged and expired tokens all yield
// domain.ErrUnauthenticated.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.Username == "" || claims.Role == "" {
		return nil, fmt.Errorf("%w: incomplete claims", domain.ErrUnauthenticated)
	}

	return &domain.Claims{Username: claims.Username, Role: claims.Role}, nil
}
