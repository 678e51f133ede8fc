package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/engine"
	"github.com/hafprodutora/editcostV3/internal/testutil"
)

func TestTimerService_StartAdvancePause(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Wedding edit", testutil.WithHourlyRate(50))
	svc.seedState(t, p)

	require.NoError(t, svc.Timer.Start(ctx, testEmail, p.ID))

	for i := 0; i < 60; i++ {
		running, err := svc.Timer.Advance(ctx, testEmail)
		require.NoError(t, err)
		assert.True(t, running)
	}

	got, err := svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.TimeSpentSeconds)
	// 60 s at 50/h
	assert.InDelta(t, 50.0/60, got.TotalCost, 1e-9)
	assert.Equal(t, domain.StatusInEditing, got.Status)

	require.NoError(t, svc.Timer.Pause(ctx, testEmail, p.ID))

	running, err := svc.Timer.Advance(ctx, testEmail)
	require.NoError(t, err)
	assert.False(t, running, "advance after pause should report nothing running")

	got, err = svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.TimeSpentSeconds, "paused project must not accrue")
}

func TestTimerService_StartSwitchesRunningProject(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	a := testutil.NewTestProject("A")
	b := testutil.NewTestProject("B")
	svc.seedState(t, a, b)

	require.NoError(t, svc.Timer.Start(ctx, testEmail, a.ID))
	require.NoError(t, svc.Timer.Start(ctx, testEmail, b.ID))

	projects, err := svc.Projects.List(ctx, testEmail)
	require.NoError(t, err)

	var runningIDs []string
	for _, p := range projects {
		if p.IsTimerRunning {
			runningIDs = append(runningIDs, p.ID)
		}
	}
	require.Len(t, runningIDs, 1, "at most one project may be running")
	assert.Equal(t, b.ID, runningIDs[0])
}

func TestTimerService_AdvanceStopsOnExhaustion(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Short", testutil.WithPomodoroLeft(2))
	svc.seedState(t, p)
	require.NoError(t, svc.Timer.Start(ctx, testEmail, p.ID))

	running, err := svc.Timer.Advance(ctx, testEmail)
	require.NoError(t, err)
	assert.True(t, running)

	running, err = svc.Timer.Advance(ctx, testEmail)
	require.NoError(t, err)
	assert.True(t, running)

	// Countdown hit zero: this tick stops the timer without accruing.
	running, err = svc.Timer.Advance(ctx, testEmail)
	require.NoError(t, err)
	assert.False(t, running)

	got, err := svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TimeSpentSeconds)
	assert.Equal(t, 0, *got.PomodoroTimeLeft)
	assert.False(t, got.IsTimerRunning)
}

func TestTimerService_DeliverableFlow(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Launch film", testutil.WithDeliverables("Teaser", "Main cut"))
	svc.seedState(t, p)

	// Complex projects cannot start without an active deliverable.
	err := svc.Timer.Start(ctx, testEmail, p.ID)
	assert.ErrorIs(t, err, engine.ErrNoActiveDeliverable)

	require.NoError(t, svc.Timer.SelectDeliverable(ctx, testEmail, p.ID, p.Deliverables[0].ID))
	require.NoError(t, svc.Timer.Start(ctx, testEmail, p.ID))

	for i := 0; i < 5; i++ {
		_, err := svc.Timer.Advance(ctx, testEmail)
		require.NoError(t, err)
	}

	got, err := svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Deliverables[0].TrackedSeconds)
	assert.Equal(t, 0, got.Deliverables[1].TrackedSeconds)
	assert.Equal(t, domain.DeliverableInProgress, got.Deliverables[0].Status)
}

func TestTimerService_AddDeliverableAndExtraCost(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Film", testutil.WithDeliverables("Teaser"),
		testutil.WithHourlyRate(50), testutil.WithTimeSpent(3600))
	svc.seedState(t, p)

	d, err := svc.Timer.AddDeliverable(ctx, testEmail, p.ID, "Color pass")
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)

	c, err := svc.Timer.AddExtraCost(ctx, testEmail, p.ID, "Stock footage", 30)
	require.NoError(t, err)

	got, err := svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Deliverables, 2)
	assert.InDelta(t, 80.0, got.TotalCost, 1e-9, "extra cost lands in the cached total")

	require.NoError(t, svc.Timer.RemoveExtraCost(ctx, testEmail, p.ID, c.ID))
	got, err = svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, got.TotalCost, 1e-9)
}

func TestTimerService_ResetAndDuration(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	p := testutil.NewTestProject("A", testutil.WithTimeSpent(100))
	svc.seedState(t, p)
	require.NoError(t, svc.Timer.Start(ctx, testEmail, p.ID))

	err := svc.Timer.SetSessionDuration(ctx, testEmail, p.ID, 60)
	assert.ErrorIs(t, err, engine.ErrTimerRunning)

	require.NoError(t, svc.Timer.Reset(ctx, testEmail, p.ID, 60))
	got, err := svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsTimerRunning)
	assert.Equal(t, 60*60, *got.PomodoroTimeLeft)
	assert.Equal(t, 100, got.TimeSpentSeconds, "reset keeps accrued time")

	require.NoError(t, svc.Timer.SetSessionDuration(ctx, testEmail, p.ID, 25))
	got, err = svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25*60, *got.PomodoroTimeLeft)
}

func TestTimerService_FailedMutationRollsBack(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Film", testutil.WithDeliverables("Teaser"))
	svc.seedState(t, p)

	// Rejected op: selecting a deliverable on an unknown project.
	err := svc.Timer.SelectDeliverable(ctx, testEmail, "missing", p.Deliverables[0].ID)
	assert.ErrorIs(t, err, engine.ErrProjectNotFound)

	got, err := svc.Projects.Get(ctx, testEmail, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ActiveDeliverableID, "failed mutation must not persist")
}
