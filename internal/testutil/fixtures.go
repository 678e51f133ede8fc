package testutil

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hafprodutora/editcostV3/internal/domain"
)

var testNumberCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithProjectType(t domain.ProjectType) ProjectOption {
	return func(p *domain.Project) {
		p.Type = t
	}
}

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithHourlyRate(rate float64) ProjectOption {
	return func(p *domain.Project) {
		p.HourlyRate = rate
	}
}

func WithFixedPrice(price float64) ProjectOption {
	return func(p *domain.Project) {
		p.FixedPrice = price
	}
}

func WithTimeSpent(seconds int) ProjectOption {
	return func(p *domain.Project) {
		p.TimeSpentSeconds = seconds
		p.RecalculateCost()
	}
}

func WithPomodoroLeft(seconds int) ProjectOption {
	return func(p *domain.Project) {
		p.PomodoroTimeLeft = domain.IntPtr(seconds)
	}
}

func WithRunning() ProjectOption {
	return func(p *domain.Project) {
		p.IsTimerRunning = true
		p.Status = domain.StatusInEditing
	}
}

func WithStartDate(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = d
	}
}

func WithDeliverables(names ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Type = domain.ProjectComplex
		for _, name := range names {
			p.Deliverables = append(p.Deliverables, domain.Deliverable{
				ID:     uuid.New().String(),
				Name:   name,
				Status: domain.DeliverablePending,
			})
		}
	}
}

func WithActiveDeliverable(index int) ProjectOption {
	return func(p *domain.Project) {
		if index < len(p.Deliverables) {
			p.ActiveDeliverableID = p.Deliverables[index].ID
			p.Deliverables[index].Status = domain.DeliverableInProgress
		}
	}
}

func WithExtraCost(name string, value float64) ProjectOption {
	return func(p *domain.Project) {
		p.ExtraCosts = append(p.ExtraCosts, domain.ExtraCost{
			ID:    uuid.New().String(),
			Name:  name,
			Value: value,
		})
		p.RecalculateCost()
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:               uuid.New().String(),
		Number:           int(testNumberCounter.Add(1)),
		Name:             name,
		Client:           "Test Client",
		Type:             domain.ProjectSimple,
		Status:           domain.StatusPaused,
		HourlyRate:       50,
		PomodoroTimeLeft: domain.IntPtr(25 * 60),
		StartDate:        now,
		CreatedAt:        now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.RecalculateCost()
	return p
}

// NewTestState builds a user state with default settings and the given
// projects.
func NewTestState(projects ...*domain.Project) *domain.UserState {
	st := domain.NewUserState()
	st.Projects = projects
	return st
}
