package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/grove/internal/app"
	"github.com/alexanderramin/grove/internal/cli"
	"github.com/alexanderramin/grove/internal/config"
	"github.com/alexanderramin/grove/internal/db"
	"github.com/alexanderramin/grove/internal/repository"
	"github.com/alexanderramin/grove/internal/service"
	"github.com/mattn/go-isatty"
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

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire repositories
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	store := repository.NewSQLiteStore(database, uow)

	defaults := app.NewDashboardRequest()
	defaults.MonthCount = cfg.Months
	defaults.WindowDays = cfg.WindowDays

	a := &cli.App{
		Categories: service.NewCategoryService(categoryRepo, uow, observer),
		Sessions:   service.NewSessionService(sessionRepo, categoryRepo, observer),
		Dashboard:  service.NewDashboardService(store, observer),
		Seed:       service.NewSeedService(uow, service.SeedOptions{}, observer),
		Transfer:   service.NewTransferService(store, uow, observer),
		Defaults:   defaults,
		NoSeed:     cfg.NoSeed,
	}
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(a).Execute()
}
