package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hafprodutora/editcostV3/internal/db"
	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/engine"
	"github.com/hafprodutora/editcostV3/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	state repository.StateRepo
	uow   db.UnitOfWork
}

func NewProjectService(state repository.StateRepo, uow db.UnitOfWork) ProjectService {
	return &projectService{state: state, uow: uow}
}

// Create seeds a new project from the current settings snapshot plus the
// user-entered fields, optionally pre-filled from a template. The hourly
// rate is copied, never referenced: later settings edits must not change
// billing on projects that already exist.
func (s *projectService) Create(ctx context.Context, email string, in CreateProjectInput) (*domain.Project, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if in.Type == "" {
		in.Type = domain.ProjectSimple
	}
	if !domain.ValidProjectTypes[string(in.Type)] {
		return nil, fmt.Errorf("invalid project type %q", in.Type)
	}

	var created *domain.Project
	err := mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		settings := st.Settings

		name := in.Name
		fixedPrice := domain.SanitizeFloat(in.FixedPrice)
		deliverableNames := in.Deliverables
		extraCosts := in.ExtraCosts

		if in.TemplateID != "" {
			switch in.Type {
			case domain.ProjectSimple:
				t := settings.FindSimpleTemplate(in.TemplateID)
				if t == nil {
					return fmt.Errorf("simple template %q not found", in.TemplateID)
				}
				name = t.Name
				fixedPrice = t.DefaultPrice
			case domain.ProjectComplex:
				t := settings.FindComplexTemplate(in.TemplateID)
				if t == nil {
					return fmt.Errorf("complex template %q not found", in.TemplateID)
				}
				name = t.Name
				fixedPrice = t.DefaultPrice
				deliverableNames = t.Deliverables
				extraCosts = t.ExtraCosts
			}
		}

		now := time.Now().UTC()
		startDate := in.StartDate
		if startDate.IsZero() {
			startDate = now
		}

		p := &domain.Project{
			ID:               uuid.New().String(),
			Number:           len(st.Projects) + 1,
			Name:             name,
			Client:           in.Client,
			Type:             in.Type,
			Status:           domain.StatusPaused,
			Notes:            in.Notes,
			HourlyRate:       settings.HourlyRate,
			FixedPrice:       fixedPrice,
			TimeSpentSeconds: 0,
			PomodoroTimeLeft: domain.IntPtr(settings.PomodoroDuration * 60),
			IsTimerRunning:   false,
			StartDate:        startDate,
			CreatedAt:        now,
		}

		if in.Type == domain.ProjectComplex {
			for _, dn := range deliverableNames {
				p.Deliverables = append(p.Deliverables, domain.Deliverable{
					ID:     uuid.New().String(),
					Name:   dn,
					Status: domain.DeliverablePending,
				})
			}
			for _, c := range extraCosts {
				p.ExtraCosts = append(p.ExtraCosts, domain.ExtraCost{
					ID:    uuid.New().String(),
					Name:  c.Name,
					Value: domain.SanitizeFloat(c.Value),
				})
			}
		}

		// Time cost is zero at creation; only template extra costs count.
		p.RecalculateCost()

		// Most-recent-first ordering.
		st.Projects = append([]*domain.Project{p}, st.Projects...)
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *projectService) List(ctx context.Context, email string) ([]*domain.Project, error) {
	st, err := s.state.Load(ctx, email)
	if err != nil {
		return nil, err
	}
	return st.Projects, nil
}

func (s *projectService) Get(ctx context.Context, email, id string) (*domain.Project, error) {
	st, err := s.state.Load(ctx, email)
	if err != nil {
		return nil, err
	}
	p := st.FindProject(id)
	if p == nil {
		return nil, engine.ErrProjectNotFound
	}
	return p, nil
}

// Conclude freezes the project: status completed, timer stopped,
// completion time stamped. It rides the same serialized update path as
// every timer mutation.
func (s *projectService) Conclude(ctx context.Context, email, id string) (*domain.Project, error) {
	var concluded *domain.Project
	err := mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		p := st.FindProject(id)
		if p == nil {
			return engine.ErrProjectNotFound
		}
		now := time.Now().UTC()
		p.Status = domain.StatusCompleted
		p.IsTimerRunning = false
		p.CompletedAt = &now
		concluded = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return concluded, nil
}

// Delete removes the project unconditionally. Deliverables and extra
// costs are embedded in the project record, so nothing is orphaned.
func (s *projectService) Delete(ctx context.Context, email, id string) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		for i, p := range st.Projects {
			if p.ID == id {
				st.Projects = append(st.Projects[:i], st.Projects[i+1:]...)
				return nil
			}
		}
		return engine.ErrProjectNotFound
	})
}
