package ports

import (
	"context"

	"github.com/pixelnova/projecthub/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create appends the user, failing with domain.ErrUserExists when the
	// email is already taken (exact match).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
