package ports

import (
	"context"

	"github.com/pixelnova/projecthub/internal/core/domain"
)

// UpdateProjectInput carries a partial update: nil fields keep their
// previous values.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// ProjectService implements the project CRUD contract. All operations are
// scoped to the authenticated owner.
type ProjectService interface {
	Create(ctx context.Context, ownerID, name, description string) (*domain.Project, error)
	List(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Update(ctx context.Context, ownerID, projectID string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, ownerID, projectID string) error
}
