package main

import (
	"fmt"
	"os"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/catalog"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/cli"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/config"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/db"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/llm"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/planner"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/polish"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/repository"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// SWIM_HOME overrides ~/.swim as the config directory.
	cfg, err := config.Load(os.Getenv("SWIM_HOME"))
	if err != nil {
		return err
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Coaching polish only talks to a model when the LLM is enabled.
	var polisher polish.Polisher
	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client, err := llm.NewClient(cfg.ToLLM(), observer)
		if err != nil {
			return fmt.Errorf("configuring llm: %w", err)
		}
		polisher = polish.NewService(client)
	}

	p := planner.New(cat)
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Plans:      service.NewPlanService(p, planRepo, sessionRepo, profileRepo, polisher, uow, observer),
		Sessions:   service.NewSessionService(sessionRepo, p.Today, observer),
		Profiles:   service.NewProfileService(profileRepo, observer),
		Imports:    service.NewImportService(uow, observer),
		Catalog:    cat,
		Today:      p.Today,
		Logger:     logger,
		ServerAddr: cfg.Server.Address,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
