package repository

import (
	"context"
	"log"
	"net/url"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/dailyos/internal/error_values"
	"github.com/limbo/dailyos/pkg/entity"
)

type GoalsRepository struct {
	client *Client
}

func NewGoalsRepo(client *Client) *GoalsRepository {
	if client == nil {
		log.Fatal("provided nil client for goalsRepo")
	}
	return &GoalsRepository{
		client: client,
	}
}

func (gr *GoalsRepository) List(ctx context.Context, filter GoalFilter) ([]entity.Goal, error) {
	query := url.Values{}
	if filter.ProjectID != uuid.Nil {
		query.Set("project_id", filter.ProjectID.String())
	}
	dtos, err := listAll[goalDTO](ctx, gr.client, "/goals/", query)
	if err != nil {
		return nil, err
	}
	goals := make([]entity.Goal, 0, len(dtos))
	for i := range dtos {
		goals = append(goals, dtos[i].entity())
	}
	return goals, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var dto goalDTO
	err := gr.client.get(ctx, "/goals/"+id.String(), nil, &dto, errorvalues.ErrGoalNotFound)
	if err != nil {
		return nil, err
	}
	goal := dto.entity()
	return &goal, nil
}
