package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/engine"
)

func TestProjectService_CreateSnapshotsRate(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	svc.seedState(t)

	settings, err := svc.Settings.Get(ctx, testEmail)
	require.NoError(t, err)
	settings.HourlyRate = 80
	settings.PomodoroDuration = 60
	require.NoError(t, svc.Settings.Save(ctx, testEmail, settings))

	p, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{Name: "Wedding edit", Client: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 80.0, p.HourlyRate)
	assert.Equal(t, 60*60, *p.PomodoroTimeLeft, "countdown seeds from session length")
	assert.Equal(t, domain.StatusPaused, p.Status)
	assert.InDelta(t, 0.0, p.TotalCost, 1e-9)

	// Changing the rate afterwards must not touch the snapshot.
	settings.HourlyRate = 200
	require.NoError(t, svc.Settings.Save(ctx, testEmail, settings))

	got, err := svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, got.HourlyRate)
}

func TestProjectService_CreateNumbersAndOrders(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	svc.seedState(t)

	first, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{Name: "First"})
	require.NoError(t, err)
	second, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{Name: "Second"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)

	list, err := svc.Projects.List(ctx, testEmail)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Name, "most recent first")
}

func TestProjectService_CreateValidation(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	svc.seedState(t)

	_, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{})
	assert.ErrorContains(t, err, "name is required")

	_, err = svc.Projects.Create(ctx, testEmail, CreateProjectInput{Name: "X", Type: "weird"})
	assert.ErrorContains(t, err, "invalid project type")
}

func TestProjectService_CreateFromComplexTemplate(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	svc.seedState(t)

	tpl, err := svc.Settings.AddComplexTemplate(ctx, testEmail, "Launch package", 1200,
		[]string{"Teaser", "Main cut"},
		[]domain.ExtraCost{{Name: "Stock footage", Value: 30}})
	require.NoError(t, err)

	p, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{
		Name:       "ignored",
		Type:       domain.ProjectComplex,
		TemplateID: tpl.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Launch package", p.Name)
	assert.Equal(t, 1200.0, p.FixedPrice)
	require.Len(t, p.Deliverables, 2)
	assert.Equal(t, 0, p.Deliverables[0].TrackedSeconds, "template deliverables start zeroed")
	assert.Equal(t, domain.DeliverablePending, p.Deliverables[0].Status)
	require.Len(t, p.ExtraCosts, 1)
	assert.InDelta(t, 30.0, p.TotalCost, 1e-9, "template extras count, time cost is zero")

	// Instantiated IDs are fresh per project.
	q, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{
		Name:       "ignored",
		Type:       domain.ProjectComplex,
		TemplateID: tpl.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, p.Deliverables[0].ID, q.Deliverables[0].ID)
}

func TestProjectService_CreateFromUnknownTemplate(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	svc.seedState(t)

	_, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{
		Name:       "X",
		TemplateID: "missing",
	})
	assert.ErrorContains(t, err, "not found")
}

func TestProjectService_ConcludeFreezesProject(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	svc.seedState(t)

	p, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{Name: "X"})
	require.NoError(t, err)
	require.NoError(t, svc.Timer.Start(ctx, testEmail, p.ID))

	concluded, err := svc.Projects.Conclude(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, concluded.Status)
	assert.False(t, concluded.IsTimerRunning)
	require.NotNil(t, concluded.CompletedAt)
	assert.WithinDuration(t, time.Now().UTC(), *concluded.CompletedAt, time.Minute)

	err = svc.Timer.Start(ctx, testEmail, p.ID)
	assert.ErrorIs(t, err, engine.ErrProjectCompleted)
}

func TestProjectService_Delete(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	svc.seedState(t)

	p, err := svc.Projects.Create(ctx, testEmail, CreateProjectInput{Name: "X"})
	require.NoError(t, err)

	require.NoError(t, svc.Projects.Delete(ctx, testEmail, p.ID))

	_, err = svc.Projects.Get(ctx, testEmail, p.ID)
	assert.ErrorIs(t, err, engine.ErrProjectNotFound)

	err = svc.Projects.Delete(ctx, testEmail, p.ID)
	assert.ErrorIs(t, err, engine.ErrProjectNotFound)
}
