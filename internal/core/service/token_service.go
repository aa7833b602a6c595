package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pixelnova/projecthub/internal/core/domain"
)

// TokenService issues and verifies HS256-signed session tokens. The signing
// secret is fixed at construction; rotating it invalidates every token issued
// before the rotation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.UserID,
		"email": claims.Email,
		"name":  claims.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the identity claims. The
// typed failures are for diagnostics; callers map all of them to 401.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	parsed := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenBadSignature
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenMalformed
	}

	sub, _ := parsed["sub"].(string)
	email, _ := parsed["email"].(string)
	name, _ := parsed["name"].(string)
	if sub == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.Claims{UserID: sub, Email: email, Name: name}, nil
}
