package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/tmorland/wayfare/internal/cli"
	"github.com/tmorland/wayfare/internal/config"
	"github.com/tmorland/wayfare/internal/db"
	"github.com/tmorland/wayfare/internal/repository"
	"github.com/tmorland/wayfare/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Default DB path: ~/.wayfare/wayfare.db
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".wayfare", "wayfare.db")
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	journeyRepo := repository.NewSQLiteJourneyRepo(database)
	stageRepo := repository.NewSQLiteStageRepo(database)
	stepRepo := repository.NewSQLiteStepRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Journeys: service.NewJourneyService(journeyRepo, stageRepo, stepRepo, uow),
		Stages:   service.NewStageService(stageRepo, uow),
		Steps:    service.NewStepService(stepRepo, uow),
		Config:   cfg,
		Plain:    !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
