package service

import (
	"context"
	"fmt"

	"github.com/hafprodutora/editcostV3/internal/db"
	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/repository"
	"github.com/google/uuid"
)

type settingsService struct {
	state repository.StateRepo
	uow   db.UnitOfWork
}

func NewSettingsService(state repository.StateRepo, uow db.UnitOfWork) SettingsService {
	return &settingsService{state: state, uow: uow}
}

func (s *settingsService) Get(ctx context.Context, email string) (domain.Settings, error) {
	st, err := s.state.Load(ctx, email)
	if err != nil {
		return domain.Settings{}, err
	}
	return st.Settings, nil
}

// Save replaces the user's settings. Existing projects keep their rate
// snapshot regardless of what changes here.
func (s *settingsService) Save(ctx context.Context, email string, settings domain.Settings) error {
	settings.Normalize()
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		st.Settings = settings
		return nil
	})
}

func (s *settingsService) AddSimpleTemplate(ctx context.Context, email, name string, price float64) (*domain.SimpleTemplate, error) {
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	t := domain.SimpleTemplate{
		ID:           uuid.New().String(),
		Name:         name,
		DefaultPrice: domain.SanitizeFloat(price),
	}
	err := mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		st.Settings.SimpleTemplates = append(st.Settings.SimpleTemplates, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *settingsService) AddComplexTemplate(ctx context.Context, email, name string, price float64, deliverables []string, extras []domain.ExtraCost) (*domain.ComplexTemplate, error) {
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	t := domain.ComplexTemplate{
		ID:           uuid.New().String(),
		Name:         name,
		DefaultPrice: domain.SanitizeFloat(price),
		Deliverables: deliverables,
	}
	for _, e := range extras {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		e.Value = domain.SanitizeFloat(e.Value)
		t.ExtraCosts = append(t.ExtraCosts, e)
	}
	err := mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		st.Settings.ComplexTemplates = append(st.Settings.ComplexTemplates, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *settingsService) RemoveTemplate(ctx context.Context, email, id string) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		for i, t := range st.Settings.SimpleTemplates {
			if t.ID == id {
				st.Settings.SimpleTemplates = append(st.Settings.SimpleTemplates[:i], st.Settings.SimpleTemplates[i+1:]...)
				return nil
			}
		}
		for i, t := range st.Settings.ComplexTemplates {
			if t.ID == id {
				st.Settings.ComplexTemplates = append(st.Settings.ComplexTemplates[:i], st.Settings.ComplexTemplates[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("template %q not found", id)
	})
}
