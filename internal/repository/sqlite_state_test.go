package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/testutil"
)

func seedUserRow(t *testing.T, repo *SQLiteUserRepo, email string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &domain.User{
		Email:     email,
		Password:  "pw",
		CreatedAt: time.Now().UTC(),
	}))
}

func TestStateRepo_LoadMissingReturnsDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStateRepo(database)

	st, err := repo.Load(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, st.Projects)
	assert.Equal(t, 50.0, st.Settings.HourlyRate)
	assert.Equal(t, 25, st.Settings.PomodoroDuration)
}

func TestStateRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()
	seedUserRow(t, users, "editor@example.com")

	p := testutil.NewTestProject("Film",
		testutil.WithDeliverables("Teaser"),
		testutil.WithExtraCost("Gear", 15),
		testutil.WithTimeSpent(90))
	st := testutil.NewTestState(p)
	st.Settings.HourlyRate = 72

	require.NoError(t, repo.Save(ctx, "editor@example.com", st))

	got, err := repo.Load(ctx, "editor@example.com")
	require.NoError(t, err)
	assert.Equal(t, 72.0, got.Settings.HourlyRate)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, p.ID, got.Projects[0].ID)
	assert.Equal(t, 90, got.Projects[0].TimeSpentSeconds)
	require.Len(t, got.Projects[0].Deliverables, 1)
	require.Len(t, got.Projects[0].ExtraCosts, 1)
	require.NotNil(t, got.Projects[0].PomodoroTimeLeft)
	assert.Equal(t, 25*60, *got.Projects[0].PomodoroTimeLeft)
}

func TestStateRepo_SaveOverwrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()
	seedUserRow(t, users, "editor@example.com")

	require.NoError(t, repo.Save(ctx, "editor@example.com", testutil.NewTestState(testutil.NewTestProject("A"))))
	require.NoError(t, repo.Save(ctx, "editor@example.com", testutil.NewTestState()))

	got, err := repo.Load(ctx, "editor@example.com")
	require.NoError(t, err)
	assert.Empty(t, got.Projects, "save replaces the whole document")
}

func TestStateRepo_ToleratesUnknownAndMissingFields(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()
	seedUserRow(t, users, "editor@example.com")

	// A document from a different product iteration: one unknown field,
	// most known fields absent.
	doc := `{"settings":{"hourlyRate":60},"projects":[{"id":"p1","name":"Old","futureField":true}]}`
	_, err := database.ExecContext(ctx,
		`INSERT INTO user_state (email, doc, updated_at) VALUES (?, ?, ?)`,
		"editor@example.com", doc, time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)

	st, err := repo.Load(ctx, "editor@example.com")
	require.NoError(t, err)
	assert.Equal(t, 60.0, st.Settings.HourlyRate)
	assert.Equal(t, 25, st.Settings.PomodoroDuration, "absent settings default")
	require.Len(t, st.Projects, 1)
	p := st.Projects[0]
	assert.Equal(t, "Old", p.Name)
	assert.Equal(t, 0, p.TimeSpentSeconds)
	assert.Equal(t, domain.ProjectSimple, p.Type, "absent type defaults to simple")
	assert.Equal(t, domain.StatusPaused, p.Status)
}

func TestStateRepo_SelfHealsMalformedNumericFields(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	repo := NewSQLiteStateRepo(database)
	ctx := context.Background()
	seedUserRow(t, users, "editor@example.com")

	// hourlyRate persisted as a string and a negative accumulator.
	doc := `{"settings":{"hourlyRate":"abc"},"projects":[{"id":"p1","name":"Broken","timeSpentSeconds":-40,"hourlyRate":"oops","totalCost":12.5}]}`
	_, err := database.ExecContext(ctx,
		`INSERT INTO user_state (email, doc, updated_at) VALUES (?, ?, ?)`,
		"editor@example.com", doc, time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)

	st, err := repo.Load(ctx, "editor@example.com")
	require.NoError(t, err, "a wrong-typed field must not fail the read")
	require.Len(t, st.Projects, 1)
	p := st.Projects[0]
	assert.Equal(t, 0, p.TimeSpentSeconds, "negative accumulator clamps to zero")
	assert.Equal(t, 0.0, p.HourlyRate)
	assert.Equal(t, 12.5, p.TotalCost, "well-formed fields survive")
}
