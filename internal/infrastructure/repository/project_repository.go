package repository

import (
	"context"
	"sync"

	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/infrastructure/store"
)

type ProjectRepository struct {
	mu    sync.Mutex
	store store.Store[domain.Project]
}

func NewProjectRepository(s store.Store[domain.Project]) *ProjectRepository {
	return &ProjectRepository{store: s}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	projects = append(projects, *project)
	if err := r.store.Save(ctx, projects); err != nil {
		return nil, err
	}

	created := *project
	return &created, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	projects, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]*domain.Project, 0)
	for i := range projects {
		if projects[i].OwnerID == ownerID {
			p := projects[i]
			owned = append(owned, &p)
		}
	}
	return owned, nil
}

// Update applies mutate to the matching record and persists the collection.
// A record owned by a different user is reported as not found.
func (r *ProjectRepository) Update(ctx context.Context, ownerID, projectID string, mutate func(*domain.Project)) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(projects, ownerID, projectID)
	if idx < 0 {
		return nil, domain.ErrProjectNotFound
	}

	mutate(&projects[idx])
	if err := r.store.Save(ctx, projects); err != nil {
		return nil, err
	}

	updated := projects[idx]
	return &updated, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, ownerID, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(projects, ownerID, projectID)
	if idx < 0 {
		return domain.ErrProjectNotFound
	}

	projects = append(projects[:idx], projects[idx+1:]...)
	return r.store.Save(ctx, projects)
}

func indexOf(projects []domain.Project, ownerID, projectID string) int {
	for i := range projects {
		if projects[i].ID == projectID && projects[i].OwnerID == ownerID {
			return i
		}
	}
	return -1
}
