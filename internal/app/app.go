package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/gridline/f1-mirror/external/ergast"
	"github.com/gridline/f1-mirror/internal/config"
	"github.com/gridline/f1-mirror/internal/infrastructure/repository/postgres"
	"github.com/gridline/f1-mirror/internal/interfaces/httpapi"
	"github.com/gridline/f1-mirror/internal/platform/logging"
	"github.com/gridline/f1-mirror/internal/usecase"
)

// App owns the process-wide resources: the database pool, the import
// worker pool and the HTTP server that fronts both.
type App struct {
	Server *http.Server

	db   *sqlx.DB
	jobs *usecase.ImportJobService
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	seasonRepo := postgres.NewSeasonRepository(db)
	circuitRepo := postgres.NewCircuitRepository(db)
	driverRepo := postgres.NewDriverRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	roundRepo := postgres.NewRoundRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	resultRepo := postgres.NewResultRepository(db)
	teamDriverRepo := postgres.NewTeamDriverRepository(db)
	jobRepo := postgres.NewImportJobRepository(db)

	catalog := usecase.NewCatalogService(
		seasonRepo, circuitRepo, driverRepo, teamRepo,
		roundRepo, sessionRepo, resultRepo, teamDriverRepo,
	)

	fetcher := ergast.NewClient(ergast.ClientConfig{
		BaseURL: cfg.ErgastBaseURL,
		Timeout: cfg.ErgastTimeout,
	}, logger)

	importer := usecase.NewImportService(
		fetcher, seasonRepo, circuitRepo, driverRepo, teamRepo,
		roundRepo, sessionRepo, teamDriverRepo,
		usecase.ImportServiceConfig{
			SeasonFloor:      cfg.ImportSeasonFloor,
			DefaultStartYear: cfg.ImportDefaultStartYear,
		},
		logger,
	)

	jobs, err := usecase.NewImportJobService(importer, jobRepo, cfg.ImportWorkers, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("build import job service: %w", err)
	}

	handler := httpapi.NewHandler(catalog, jobs, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{Server: server, db: db, jobs: jobs}, nil
}

// Close releases the worker pool before the database so in-flight jobs
// cannot observe a closed pool.
func (a *App) Close() error {
	a.jobs.Close()
	return a.db.Close()
}

func openDatabase(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", cfg.DatabaseURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DatabaseURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connected",
		"db", dbNameFromURL(cfg.DatabaseURL),
		"max_open_conns", cfg.DBMaxOpenConns,
	)

	return db, nil
}
