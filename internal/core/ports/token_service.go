package ports

import "github.com/pixelnova/projecthub/internal/core/domain"

// TokenService issues and verifies stateless bearer tokens. Tokens are never
// persisted; verification relies on the signature and expiry alone.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	Verify(token string) (*domain.Claims, error)
}
