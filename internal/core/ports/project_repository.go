package ports

import (
	"context"

	"github.com/pixelnova/projecthub/internal/core/domain"
)

// ProjectRepository defines persistence operations for project records.
// Every method that takes an ownerID treats a record owned by someone else
// exactly like a missing record (domain.ErrProjectNotFound).
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Update(ctx context.Context, ownerID, projectID string, mutate func(*domain.Project)) (*domain.Project, error)
	Delete(ctx context.Context, ownerID, projectID string) error
}
