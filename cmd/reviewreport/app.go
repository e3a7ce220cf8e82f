package main

import (
	"context"
	"log/slog"
	"os"

	sqliteadapter "github.com/ericfisherdev/reviewreport/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/reviewreport/internal/application"
	"github.com/ericfisherdev/reviewreport/internal/config"
	"github.com/ericfisherdev/reviewreport/internal/i18n"
	"github.com/ericfisherdev/reviewreport/internal/logging"
)

// app is the composition root shared by all commands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *sqliteadapter.DB
	reports *application.ReviewReportService
}

// openApp loads configuration, installs the logger, opens and migrates the
// database and wires the report service.
func openApp(ctx context.Context) (*app, error) {
	// 1. Load configuration (fail fast on invalid env vars).
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}

	// 2. Logs go to stderr so exported CSV on stdout stays clean.
	logger := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	logger.Debug("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"default_locale", cfg.DefaultLocale,
		"timezone", cfg.Location.String(),
	)

	// 3. Load translations.
	catalog, err := i18n.Load(cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}

	// 4. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("database opened", "path", db.Path())

	// 5. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		_ = db.Close()
		return nil, err
	}
	version, err := sqliteadapter.SchemaVersion(db.Writer)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Debug("schema ready", "path", db.Path(), "version", version)

	// 6. Wire adapters.
	reports := application.NewReviewReportService(
		sqliteadapter.NewJournalRepo(db),
		sqliteadapter.NewReviewReportRepo(db, cfg.Location),
		sqliteadapter.NewReviewFormRepo(db),
		sqliteadapter.NewRecommendationRepo(db),
		catalog,
		cfg.Location,
	).WithLogger(logger)

	return &app{cfg: cfg, logger: logger, db: db, reports: reports}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("error closing database", "error", err)
	}
}
