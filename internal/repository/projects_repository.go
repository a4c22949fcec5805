package repository

import (
	"context"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailyos/internal/error_values"
	"github.com/limbo/dailyos/pkg/entity"
)

type ProjectsRepository struct {
	client *Client
}

func NewProjectsRepo(client *Client) *ProjectsRepository {
	if client == nil {
		log.Fatal("provided nil client for projectsRepo")
	}
	return &ProjectsRepository{
		client: client,
	}
}

func (pr *ProjectsRepository) List(ctx context.Context) ([]entity.Project, error) {
	dtos, err := listAll[projectDTO](ctx, pr.client, "/projects/", nil)
	if err != nil {
		return nil, err
	}
	projects := make([]entity.Project, 0, len(dtos))
	for i := range dtos {
		projects = append(projects, dtos[i].entity())
	}
	return projects, nil
}

func (pr *ProjectsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var dto projectDTO
	err := pr.client.get(ctx, "/projects/"+id.String(), nil, &dto, errorvalues.ErrProjectNotFound)
	if err != nil {
		return nil, err
	}
	project := dto.entity()
	return &project, nil
}
