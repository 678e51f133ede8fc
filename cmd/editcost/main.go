package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/hafprodutora/editcostV3/internal/cli"
	"github.com/hafprodutora/editcostV3/internal/db"
	"github.com/hafprodutora/editcostV3/internal/repository"
	"github.com/hafprodutora/editcostV3/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.editcost/editcost.db
	dbPath := os.Getenv("EDITCOST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".editcost", "editcost.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	sessionRepo := repository.NewSQLiteAuthSessionRepo(database)
	stateRepo := repository.NewSQLiteStateRepo(database)

	// Wire unit of work for the serialized read-modify-write path
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	app := &cli.App{
		Auth:     service.NewAuthService(userRepo, sessionRepo),
		Settings: service.NewSettingsService(stateRepo, uow),
		Projects: service.NewProjectService(stateRepo, uow),
		Timer:    service.NewTimerService(stateRepo, uow),
		Reports:  service.NewReportService(stateRepo),
	}

	// Detect interactive terminal for the onboarding form and watch view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
