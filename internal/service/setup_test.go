package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hafprodutora/editcostV3/internal/domain"
	"github.com/hafprodutora/editcostV3/internal/repository"
	"github.com/hafprodutora/editcostV3/internal/testutil"
)

const testEmail = "editor@example.com"

type testServices struct {
	db       *sql.DB
	Auth     AuthService
	Settings SettingsService
	Projects ProjectService
	Timer    TimerService
	Reports  ReportService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	state := repository.NewSQLiteStateRepo(database)

	return &testServices{
		db:       database,
		Auth:     NewAuthService(repository.NewSQLiteUserRepo(database), repository.NewSQLiteAuthSessionRepo(database)),
		Settings: NewSettingsService(state, uow),
		Projects: NewProjectService(state, uow),
		Timer:    NewTimerService(state, uow),
		Reports:  NewReportService(state),
	}
}

// seedState creates the default test user and persists a state document
// holding the given projects.
func (s *testServices) seedState(t *testing.T, projects ...*domain.Project) {
	t.Helper()
	ctx := context.Background()

	users := repository.NewSQLiteUserRepo(s.db)
	require.NoError(t, users.Create(ctx, &domain.User{
		Email:     testEmail,
		Password:  "secret",
		CreatedAt: time.Now().UTC(),
	}))

	states := repository.NewSQLiteStateRepo(s.db)
	require.NoError(t, states.Save(ctx, testEmail, testutil.NewTestState(projects...)))
}
