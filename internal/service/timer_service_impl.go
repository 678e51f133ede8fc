package service

import (
	"context"

	"github.com/hafprodutora/editcostV3/internal/db"
	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/engine"
	"github.com/hafprodutora/editcostV3/internal/repository"
	"github.com/google/uuid"
)

type timerService struct {
	state repository.StateRepo
	uow   db.UnitOfWork
}

// NewTimerService bridges the engine's pure reducers to the store. Every
// operation, ticks included, is one serialized read-modify-write.
func NewTimerService(state repository.StateRepo, uow db.UnitOfWork) TimerService {
	return &timerService{state: state, uow: uow}
}

func (s *timerService) Start(ctx context.Context, email, projectID string) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.Start(st.Projects, projectID)
	})
}

func (s *timerService) Pause(ctx context.Context, email, projectID string) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.Pause(st.Projects, projectID)
	})
}

func (s *timerService) Reset(ctx context.Context, email, projectID string, sessionMinutes int) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.Reset(st.Projects, projectID, sessionMinutes)
	})
}

func (s *timerService) SetSessionDuration(ctx context.Context, email, projectID string, minutes int) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.SetSessionDuration(st.Projects, projectID, minutes)
	})
}

func (s *timerService) SelectDeliverable(ctx context.Context, email, projectID, deliverableID string) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.SelectActiveDeliverable(st.Projects, projectID, deliverableID)
	})
}

func (s *timerService) ToggleDeliverable(ctx context.Context, email, projectID, deliverableID string) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.ToggleDeliverableStatus(st.Projects, projectID, deliverableID)
	})
}

func (s *timerService) AddDeliverable(ctx context.Context, email, projectID, name string) (*domain.Deliverable, error) {
	d := domain.Deliverable{
		ID:     uuid.New().String(),
		Name:   name,
		Status: domain.DeliverablePending,
	}
	err := mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.AddDeliverable(st.Projects, projectID, d)
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *timerService) AddExtraCost(ctx context.Context, email, projectID, name string, value float64) (*domain.ExtraCost, error) {
	c := domain.ExtraCost{
		ID:    uuid.New().String(),
		Name:  name,
		Value: value,
	}
	err := mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.AddExtraCost(st.Projects, projectID, c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *timerService) RemoveExtraCost(ctx context.Context, email, projectID, costID string) error {
	return mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		return engine.RemoveExtraCost(st.Projects, projectID, costID)
	})
}

// Advance applies one tick against the latest stored state. The running
// project is re-resolved from that snapshot on every call, so a start or
// pause issued between ticks is always observed.
func (s *timerService) Advance(ctx context.Context, email string) (bool, error) {
	var running bool
	err := mutateState(ctx, s.uow, email, func(st *domain.UserState) error {
		engine.Tick(st.Projects, st.Settings)
		running = engine.AnyRunning(st.Projects)
		return nil
	})
	if err != nil {
		return false, err
	}
	return running, nil
}
