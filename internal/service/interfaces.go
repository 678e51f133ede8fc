package service

import (
	"context"
	"errors"
	"time"

	"github.com/hafprodutora/editcostV3/internal/domain"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrNotLoggedIn        = errors.New("not logged in")
)

type AuthService interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (string, error)
}

type SettingsService interface {
	Get(ctx context.Context, email string) (domain.Settings, error)
	Save(ctx context.Context, email string, s domain.Settings) error
	AddSimpleTemplate(ctx context.Context, email, name string, price float64) (*domain.SimpleTemplate, error)
	AddComplexTemplate(ctx context.Context, email, name string, price float64, deliverables []string, extras []domain.ExtraCost) (*domain.ComplexTemplate, error)
	RemoveTemplate(ctx context.Context, email, id string) error
}

// CreateProjectInput carries the user-entered fields for a new project.
// Economic defaults (rate snapshot, countdown seed) come from the user's
// settings at creation time, optionally pre-filled from a template.
type CreateProjectInput struct {
	Name         string
	Client       string
	Notes        string
	Type         domain.ProjectType
	FixedPrice   float64
	StartDate    time.Time
	TemplateID   string
	Deliverables []string
	ExtraCosts   []domain.ExtraCost
}

type ProjectService interface {
	Create(ctx context.Context, email string, in CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context, email string) ([]*domain.Project, error)
	Get(ctx context.Context, email, id string) (*domain.Project, error)
	Conclude(ctx context.Context, email, id string) (*domain.Project, error)
	Delete(ctx context.Context, email, id string) error
}

// TimerService is the only sanctioned mutation surface for timer state.
// Every call funnels through one serialized read-modify-write of the
// user's state document.
type TimerService interface {
	Start(ctx context.Context, email, projectID string) error
	Pause(ctx context.Context, email, projectID string) error
	Reset(ctx context.Context, email, projectID string, sessionMinutes int) error
	SetSessionDuration(ctx context.Context, email, projectID string, minutes int) error
	SelectDeliverable(ctx context.Context, email, projectID, deliverableID string) error
	ToggleDeliverable(ctx context.Context, email, projectID, deliverableID string) error
	AddDeliverable(ctx context.Context, email, projectID, name string) (*domain.Deliverable, error)
	AddExtraCost(ctx context.Context, email, projectID, name string, value float64) (*domain.ExtraCost, error)
	RemoveExtraCost(ctx context.Context, email, projectID, costID string) error

	// Advance applies one tick and reports whether any project is still
	// running afterwards. The engine loop drives this.
	Advance(ctx context.Context, email string) (bool, error)
}

// MonthlySummary aggregates the projects whose start date falls in one
// calendar month.
type MonthlySummary struct {
	Month        time.Month
	Year         int
	TotalSeconds int
	TotalCost    float64
	InProgress   int
	Completed    int
	Projects     []*domain.Project
}

// ProjectReport breaks a single project's accrued cost down for display.
type ProjectReport struct {
	Project        *domain.Project
	TimeCost       float64
	ExtraCostTotal float64
	Profit         float64
}

type ReportService interface {
	Monthly(ctx context.Context, email string, month time.Month, year int) (*MonthlySummary, error)
	Project(ctx context.Context, email, id string) (*ProjectReport, error)
}
