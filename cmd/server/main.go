// Package main provides the HTTP entry point for the clinical scales server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/api"
	"github.com/clinical-scales-server/internal/catalog"
	"github.com/clinical-scales-server/internal/config"
	"github.com/clinical-scales-server/internal/database"
	"github.com/clinical-scales-server/internal/domain"
	"github.com/clinical-scales-server/internal/extraction"
	"github.com/clinical-scales-server/internal/formula"
	"github.com/clinical-scales-server/internal/normalize"
	"github.com/clinical-scales-server/internal/service"
	"github.com/clinical-scales-server/internal/session"
	"github.com/clinical-scales-server/internal/units"
	"github.com/clinical-scales-server/pkg/llm"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := newLogger(cfg.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	catalogStore, closeCatalog, err := buildCatalogStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize catalog store: %v", err)
	}
	defer closeCatalog()

	cachedCatalog, err := catalog.NewCachedStore(catalogStore, cfg.Cache, logger)
	if err != nil {
		log.Fatalf("Failed to initialize catalog cache: %v", err)
	}
	defer cachedCatalog.Close()

	sessionStore, err := buildSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer sessionStore.Close()

	registry := formula.NewRegistry(logger)
	if err := service.VerifyFormulaCoverage(ctx, cachedCatalog, registry, logger); err != nil {
		log.Fatalf("Formula coverage check failed: %v", err)
	}

	model := llm.NewResilientClient(llm.NewClient(cfg.LLM, logger), logger)

	pipeline := service.NewPipeline(
		catalog.NewResolver(cachedCatalog, logger),
		extraction.NewExtractor(model, cfg.LLM.ExtractionModel, logger),
		normalize.NewNormalizer(units.NewConverter(), logger),
		service.NewEvaluator(registry, logger),
		service.NewSynthesizer(model, cfg.LLM.SynthesisModel, cfg.LLM.MaxTokens, logger),
		sessionStore,
		logger,
	)

	server := api.NewServer(configManager, pipeline, cachedCatalog, sessionStore, model, logger)

	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting clinical scales server")

	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	logger.Info("Server stopped")
}

// newLogger builds the application logger from configuration
func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// buildCatalogStore creates the configured catalog store. For postgres it
// runs pending migrations before opening the pool.
func buildCatalogStore(ctx context.Context, cfg *domain.Config, logger *logrus.Logger) (domain.CatalogStore, func(), error) {
	switch cfg.Catalog.Driver {
	case "memory":
		return catalog.NewMemoryStore(), func() {}, nil

	case "sqlite":
		store, err := catalog.NewSQLiteStore(cfg.Catalog.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	case "postgres":
		migrator, err := database.NewMigrator(cfg.Catalog.URL(), cfg.Catalog.MigrationsPath, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := migrator.Apply(ctx); err != nil {
			migrator.Close()
			return nil, nil, err
		}
		migrator.Close()

		db, err := database.NewConnection(ctx, cfg.Catalog, logger)
		if err != nil {
			return nil, nil, err
		}
		store, err := catalog.NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil

	default:
		return nil, nil, domain.NewValidationError("catalog.driver",
			"unsupported catalog driver", cfg.Catalog.Driver)
	}
}

// buildSessionStore creates the configured session store
func buildSessionStore(cfg *domain.Config) (domain.SessionStore, error) {
	switch cfg.Session.Driver {
	case "postgres":
		return session.NewPostgresStoreFromURL(cfg.Session.DatabaseURL)
	default:
		return session.NewSQLiteStore(cfg.Session.SQLitePath)
	}
}
