package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/testutil"
)

func TestStart_StopsOtherRunningProject(t *testing.T) {
	a := testutil.NewTestProject("A",
		testutil.WithRunning(),
		testutil.WithTimeSpent(500),
		testutil.WithPomodoroLeft(900),
	)
	b := testutil.NewTestProject("B")
	projects := []*domain.Project{a, b}

	require.NoError(t, Start(projects, b.ID))

	assert.False(t, a.IsTimerRunning, "starting B must stop A")
	assert.True(t, b.IsTimerRunning)
	assert.Equal(t, domain.StatusInEditing, b.Status)

	// A keeps everything else: accrued time, countdown, status.
	assert.Equal(t, 500, a.TimeSpentSeconds)
	assert.Equal(t, 900, *a.PomodoroTimeLeft)
	assert.Equal(t, domain.StatusInEditing, a.Status)
}

func TestStart_UnknownProject(t *testing.T) {
	projects := []*domain.Project{testutil.NewTestProject("A")}
	err := Start(projects, "nope")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestStart_CompletedProjectIsFrozen(t *testing.T) {
	p := testutil.NewTestProject("Done", testutil.WithStatus(domain.StatusCompleted))
	err := Start([]*domain.Project{p}, p.ID)
	assert.ErrorIs(t, err, ErrProjectCompleted)
	assert.False(t, p.IsTimerRunning)
}

func TestStart_ComplexNeedsActiveDeliverable(t *testing.T) {
	p := testutil.NewTestProject("Film", testutil.WithDeliverables("Teaser"))
	projects := []*domain.Project{p}

	err := Start(projects, p.ID)
	assert.ErrorIs(t, err, ErrNoActiveDeliverable)

	require.NoError(t, SelectActiveDeliverable(projects, p.ID, p.Deliverables[0].ID))
	require.NoError(t, Start(projects, p.ID))
	assert.True(t, p.IsTimerRunning)
}

func TestPause_IsIdempotentAndKeepsStatus(t *testing.T) {
	p := testutil.NewTestProject("A", testutil.WithRunning())
	projects := []*domain.Project{p}

	require.NoError(t, Pause(projects, p.ID))
	assert.False(t, p.IsTimerRunning)
	assert.Equal(t, domain.StatusInEditing, p.Status, "pause must not revert status")

	require.NoError(t, Pause(projects, p.ID))
	assert.False(t, p.IsTimerRunning)
}

func TestReset_ReseedsCountdownOnly(t *testing.T) {
	p := testutil.NewTestProject("A",
		testutil.WithRunning(),
		testutil.WithHourlyRate(50),
		testutil.WithTimeSpent(7200),
		testutil.WithPomodoroLeft(30),
	)
	projects := []*domain.Project{p}

	require.NoError(t, Reset(projects, p.ID, 60))

	assert.False(t, p.IsTimerRunning)
	assert.Equal(t, 60*60, *p.PomodoroTimeLeft)
	assert.Equal(t, 7200, p.TimeSpentSeconds, "reset must not touch accrued time")
	assert.InDelta(t, 100.0, p.TotalCost, 1e-9, "reset must not touch cost")
}

func TestSetSessionDuration_RejectedWhileRunning(t *testing.T) {
	p := testutil.NewTestProject("A", testutil.WithRunning())
	projects := []*domain.Project{p}

	err := SetSessionDuration(projects, p.ID, 60)
	assert.ErrorIs(t, err, ErrTimerRunning)

	require.NoError(t, Pause(projects, p.ID))
	require.NoError(t, SetSessionDuration(projects, p.ID, 60))
	assert.Equal(t, 60*60, *p.PomodoroTimeLeft)
}

func TestSelectActiveDeliverable_Rules(t *testing.T) {
	simple := testutil.NewTestProject("Simple")
	err := SelectActiveDeliverable([]*domain.Project{simple}, simple.ID, "x")
	assert.ErrorIs(t, err, ErrNotComplex)

	p := testutil.NewTestProject("Film", testutil.WithDeliverables("Teaser", "Main"))
	projects := []*domain.Project{p}

	err = SelectActiveDeliverable(projects, p.ID, "missing")
	assert.ErrorIs(t, err, ErrDeliverableNotFound)

	require.NoError(t, SelectActiveDeliverable(projects, p.ID, p.Deliverables[0].ID))
	assert.Equal(t, p.Deliverables[0].ID, p.ActiveDeliverableID)
	assert.Equal(t, domain.DeliverableInProgress, p.Deliverables[0].Status,
		"selecting a pending deliverable promotes it")

	// Switching while running is rejected.
	require.NoError(t, Start(projects, p.ID))
	err = SelectActiveDeliverable(projects, p.ID, p.Deliverables[1].ID)
	assert.ErrorIs(t, err, ErrTimerRunning)
}

func TestToggleDeliverableStatus(t *testing.T) {
	p := testutil.NewTestProject("Film", testutil.WithDeliverables("Teaser"))
	projects := []*domain.Project{p}
	id := p.Deliverables[0].ID

	require.NoError(t, ToggleDeliverableStatus(projects, p.ID, id))
	assert.Equal(t, domain.DeliverableDone, p.Deliverables[0].Status)

	require.NoError(t, ToggleDeliverableStatus(projects, p.ID, id))
	assert.Equal(t, domain.DeliverablePending, p.Deliverables[0].Status,
		"toggling done goes back to pending, not in_progress")
}

func TestAddExtraCost_RecomputesTotal(t *testing.T) {
	p := testutil.NewTestProject("A",
		testutil.WithHourlyRate(50),
		testutil.WithTimeSpent(3600),
	)
	projects := []*domain.Project{p}
	require.InDelta(t, 50.0, p.TotalCost, 1e-9)

	require.NoError(t, AddExtraCost(projects, p.ID, domain.ExtraCost{
		ID: "c1", Name: "Stock footage", Value: 30,
	}))
	assert.InDelta(t, 80.0, p.TotalCost, 1e-9)

	require.NoError(t, RemoveExtraCost(projects, p.ID, "c1"))
	assert.InDelta(t, 50.0, p.TotalCost, 1e-9)

	err := RemoveExtraCost(projects, p.ID, "c1")
	assert.ErrorIs(t, err, ErrExtraCostNotFound)
}

func TestAddExtraCost_RejectedWhileRunning(t *testing.T) {
	p := testutil.NewTestProject("A", testutil.WithRunning())
	err := AddExtraCost([]*domain.Project{p}, p.ID, domain.ExtraCost{ID: "c1", Name: "Gear", Value: 10})
	assert.ErrorIs(t, err, ErrTimerRunning)
}

func TestAddDeliverable_ComplexOnly(t *testing.T) {
	simple := testutil.NewTestProject("Simple")
	err := AddDeliverable([]*domain.Project{simple}, simple.ID, domain.Deliverable{ID: "d1", Name: "Cut"})
	assert.ErrorIs(t, err, ErrNotComplex)

	p := testutil.NewTestProject("Film", testutil.WithDeliverables("Teaser"))
	require.NoError(t, AddDeliverable([]*domain.Project{p}, p.ID, domain.Deliverable{ID: "d2", Name: "Main"}))
	require.Len(t, p.Deliverables, 2)
	assert.Equal(t, domain.DeliverablePending, p.Deliverables[1].Status, "new deliverables default to pending")
}
