package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/dailyos/internal/stats"
)

type ProjectsService struct {
	repos *Repositories
}

func NewProjectsService(repos *Repositories) *ProjectsService {
	repos.mustHaveAll()
	return &ProjectsService{
		repos: repos,
	}
}

// ListProjectProgress reports completion and all-time logged minutes per project, in upstream order.
func (ps *ProjectsService) ListProjectProgress(ctx context.Context) ([]ProjectReport, error) {
	s, err := loadSnapshot(ctx, ps.repos, snapshotQuery{
		projects: true,
		goals:    true,
		tasks:    true,
	})
	if err != nil {
		return nil, err
	}
	goalsPerProject := make(map[uuid.UUID]int, len(s.Projects))
	for _, g := range s.Goals {
		goalsPerProject[g.ProjectID]++
	}
	// input order keeps breakdown rows aligned with s.Projects
	breakdown := stats.TimeByProject(s, time.Time{}, stats.OrderByInput)
	reports := make([]ProjectReport, 0, len(s.Projects))
	for i, p := range s.Projects {
		reports = append(reports, ProjectReport{
			Project:       p,
			Progress:      stats.ProjectProgress(p, s.Goals, s.Tasks),
			Goals:         goalsPerProject[p.ID],
			MinutesLogged: breakdown[i].MinutesLogged,
			Formatted:     breakdown[i].Formatted,
		})
	}
	return reports, nil
}
