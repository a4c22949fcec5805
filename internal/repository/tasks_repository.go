package repository

import (
	"context"
	"log"
	"net/url"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/pkg/entity"
)

type TasksRepository struct {
	client *Client
}

func NewTasksRepo(client *Client) *TasksRepository {
	if client == nil {
		log.Fatal("provided nil client for tasksRepo")
	}
	return &TasksRepository{
		client: client,
	}
}

func (tr *TasksRepository) List(ctx context.Context, filter TaskFilter) ([]entity.Task, error) {
	query := url.Values{}
	if filter.GoalID != uuid.Nil {
		query.Set("goal_id", filter.GoalID.String())
	}
	if filter.ProjectID != uuid.Nil {
		query.Set("project_id", filter.ProjectID.String())
	}
	dtos, err := listAll[taskDTO](ctx, tr.client, "/tasks/", query)
	if err != nil {
		return nil, err
	}
	tasks := make([]entity.Task, 0, len(dtos))
	for i := range dtos {
		tasks = append(tasks, dtos[i].entity())
	}
	return tasks, nil
}
