package repository

import (
	"context"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/pkg/entity"
)

type ChoresRepository struct {
	client *Client
}

func NewChoresRepo(client *Client) *ChoresRepository {
	if client == nil {
		log.Fatal("provided nil client for choresRepo")
	}
	return &ChoresRepository{
		client: client,
	}
}

func (cr *ChoresRepository) List(ctx context.Context, filter ChoreFilter) ([]entity.Chore, error) {
	query := url.Values{}
	if filter.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*filter.IsActive))
	}
	dtos, err := listAll[choreDTO](ctx, cr.client, "/chores/", query)
	if err != nil {
		return nil, err
	}
	chores := make([]entity.Chore, 0, len(dtos))
	for i := range dtos {
		chores = append(chores, dtos[i].entity())
	}
	return chores, nil
}

type ChoreLogsRepository struct {
	client *Client
}

func NewChoreLogsRepo(client *Client) *ChoreLogsRepository {
	if client == nil {
		log.Fatal("provided nil client for choreLogsRepo")
	}
	return &ChoreLogsRepository{
		client: client,
	}
}

func (clr *ChoreLogsRepository) List(ctx context.Context, filter ChoreLogFilter) ([]entity.ChoreLog, error) {
	query := url.Values{}
	if filter.ChoreID != uuid.Nil {
		query.Set("chore_id", filter.ChoreID.String())
	}
	if !filter.DateFrom.IsZero() {
		query.Set("date_from", filter.DateFrom.UTC().Format(wireLayouts[1]))
	}
	if !filter.DateTo.IsZero() {
		query.Set("date_to", filter.DateTo.UTC().Format(wireLayouts[1]))
	}
	dtos, err := listAll[choreLogDTO](ctx, clr.client, "/chore-logs/", query)
	if err != nil {
		return nil, err
	}
	logs := make([]entity.ChoreLog, 0, len(dtos))
	for i := range dtos {
		logs = append(logs, dtos[i].entity())
	}
	return logs, nil
}
