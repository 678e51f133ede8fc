package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/testutil"
)

func TestTick_NoRunningProjectIsIdentity(t *testing.T) {
	a := testutil.NewTestProject("A", testutil.WithTimeSpent(100))
	b := testutil.NewTestProject("B")
	projects := []*domain.Project{a, b}
	settings := domain.DefaultSettings()

	Tick(projects, settings)

	assert.Equal(t, 100, a.TimeSpentSeconds, "paused project should not accrue")
	assert.Equal(t, 0, b.TimeSpentSeconds)
	assert.False(t, AnyRunning(projects))
}

func TestTick_AccruesTimeAndCost(t *testing.T) {
	p := testutil.NewTestProject("Wedding edit",
		testutil.WithHourlyRate(72),
		testutil.WithRunning(),
		testutil.WithPomodoroLeft(25*60),
	)
	projects := []*domain.Project{p}
	settings := domain.DefaultSettings()

	for i := 0; i < 10; i++ {
		Tick(projects, settings)
	}

	assert.Equal(t, 10, p.TimeSpentSeconds)
	assert.Equal(t, 25*60-10, *p.PomodoroTimeLeft)
	// 10 s at 72/h is 0.20
	assert.InDelta(t, 0.20, p.TotalCost, 1e-9)
	assert.True(t, p.IsTimerRunning)
}

func TestTick_OneHourAtRate50Costs50(t *testing.T) {
	p := testutil.NewTestProject("Long session",
		testutil.WithHourlyRate(50),
		testutil.WithRunning(),
		testutil.WithPomodoroLeft(2*3600),
	)
	projects := []*domain.Project{p}
	settings := domain.DefaultSettings()

	for i := 0; i < 3600; i++ {
		Tick(projects, settings)
	}

	assert.Equal(t, 3600, p.TimeSpentSeconds)
	assert.InDelta(t, 50.0, p.TotalCost, 1e-9)
}

func TestTick_ExhaustionStopsWithoutAccruing(t *testing.T) {
	p := testutil.NewTestProject("Short",
		testutil.WithRunning(),
		testutil.WithPomodoroLeft(1),
	)
	projects := []*domain.Project{p}
	settings := domain.DefaultSettings()

	// Last real second of the session.
	Tick(projects, settings)
	assert.Equal(t, 1, p.TimeSpentSeconds)
	assert.Equal(t, 0, *p.PomodoroTimeLeft)
	assert.True(t, p.IsTimerRunning)

	// Countdown is exhausted: this tick stops the timer and accrues nothing.
	Tick(projects, settings)
	assert.Equal(t, 1, p.TimeSpentSeconds, "exhausted tick must not accrue")
	assert.Equal(t, 0, *p.PomodoroTimeLeft)
	assert.False(t, p.IsTimerRunning)

	// Further ticks are no-ops.
	Tick(projects, settings)
	assert.Equal(t, 1, p.TimeSpentSeconds)
}

func TestTick_SeedsCountdownFromSettingsWhenUnset(t *testing.T) {
	p := testutil.NewTestProject("Legacy doc", testutil.WithRunning())
	p.PomodoroTimeLeft = nil
	projects := []*domain.Project{p}
	settings := domain.DefaultSettings()
	settings.PomodoroDuration = 60

	Tick(projects, settings)

	require.NotNil(t, p.PomodoroTimeLeft)
	assert.Equal(t, 60*60-1, *p.PomodoroTimeLeft, "countdown should seed from settings")
	assert.Equal(t, 1, p.TimeSpentSeconds)
}

func TestTick_TracksActiveDeliverable(t *testing.T) {
	p := testutil.NewTestProject("Launch film",
		testutil.WithDeliverables("Teaser", "Main cut"),
		testutil.WithActiveDeliverable(0),
		testutil.WithRunning(),
		testutil.WithPomodoroLeft(25*60),
	)
	projects := []*domain.Project{p}
	settings := domain.DefaultSettings()

	for i := 0; i < 120; i++ {
		Tick(projects, settings)
	}

	assert.Equal(t, 120, p.TimeSpentSeconds)
	assert.Equal(t, 120, p.Deliverables[0].TrackedSeconds)
	assert.Equal(t, 0, p.Deliverables[1].TrackedSeconds, "only the active deliverable tracks time")
}

func TestTick_OnlyRunningProjectAccrues(t *testing.T) {
	a := testutil.NewTestProject("A", testutil.WithRunning(), testutil.WithPomodoroLeft(100))
	b := testutil.NewTestProject("B", testutil.WithPomodoroLeft(100))
	projects := []*domain.Project{a, b}
	settings := domain.DefaultSettings()

	for i := 0; i < 5; i++ {
		Tick(projects, settings)
	}

	assert.Equal(t, 5, a.TimeSpentSeconds)
	assert.Equal(t, 0, b.TimeSpentSeconds)
	assert.Equal(t, 100, *b.PomodoroTimeLeft, "idle countdown must not move")
}
