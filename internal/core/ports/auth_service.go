package ports

import (
	"context"

	"github.com/pixelnova/projecthub/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns a signed session token. Unknown email and wrong password
	// are both reported as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
