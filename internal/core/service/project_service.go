package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/core/ports"
)

// ProjectService implements project CRUD scoped to the authenticated owner.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, ownerID, name, description string) (*domain.Project, error) {
	if name == "" {
		return nil, domain.ErrProjectNameRequired
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("owner_id", ownerID).Msg("project created")
	return created, nil
}

func (s *ProjectService) List(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update changes only the fields supplied in input; nil fields keep their
// previous values.
func (s *ProjectService) Update(ctx context.Context, ownerID, projectID string, input ports.UpdateProjectInput) (*domain.Project, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, domain.ErrProjectNameRequired
	}

	return s.repo.Update(ctx, ownerID, projectID, func(p *domain.Project) {
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.Description != nil {
			p.Description = *input.Description
		}
	})
}

func (s *ProjectService) Delete(ctx context.Context, ownerID, projectID string) error {
	if err := s.repo.Delete(ctx, ownerID, projectID); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", projectID).Str("owner_id", ownerID).Msg("project deleted")
	return nil
}
