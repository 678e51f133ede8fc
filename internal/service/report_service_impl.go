package service

import (
	"context"
	"time"

	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/engine"
	"github.com/hafprodutora/editcostV3/internal/repository"
)

type reportService struct {
	state repository.StateRepo
}

func NewReportService(state repository.StateRepo) ReportService {
	return &reportService{state: state}
}

// Monthly aggregates the projects whose start date falls in the given
// calendar month.
func (s *reportService) Monthly(ctx context.Context, email string, month time.Month, year int) (*MonthlySummary, error) {
	st, err := s.state.Load(ctx, email)
	if err != nil {
		return nil, err
	}

	summary := &MonthlySummary{Month: month, Year: year}
	for _, p := range st.Projects {
		if p.StartDate.Month() != month || p.StartDate.Year() != year {
			continue
		}
		summary.Projects = append(summary.Projects, p)
		summary.TotalSeconds += p.TimeSpentSeconds
		summary.TotalCost += domain.SanitizeFloat(p.TotalCost)
		switch p.Status {
		case domain.StatusInEditing:
			summary.InProgress++
		case domain.StatusCompleted:
			summary.Completed++
		}
	}
	return summary, nil
}

func (s *reportService) Project(ctx context.Context, email, id string) (*ProjectReport, error) {
	st, err := s.state.Load(ctx, email)
	if err != nil {
		return nil, err
	}
	p := st.FindProject(id)
	if p == nil {
		return nil, engine.ErrProjectNotFound
	}

	extras := p.ExtraCostTotal()
	return &ProjectReport{
		Project:        p,
		TimeCost:       domain.SanitizeFloat(p.TotalCost) - extras,
		ExtraCostTotal: extras,
		Profit:         p.Profit(),
	}, nil
}
