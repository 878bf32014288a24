// Package main provides the MCP entry point for the clinical scales server.
// This version requires no external databases - the catalog and session
// stores live in SQLite files under a single data directory.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/catalog"
	"github.com/clinical-scales-server/internal/config"
	"github.com/clinical-scales-server/internal/domain"
	"github.com/clinical-scales-server/internal/extraction"
	"github.com/clinical-scales-server/internal/formula"
	"github.com/clinical-scales-server/internal/mcp"
	"github.com/clinical-scales-server/internal/normalize"
	"github.com/clinical-scales-server/internal/service"
	"github.com/clinical-scales-server/internal/session"
	"github.com/clinical-scales-server/internal/units"
	"github.com/clinical-scales-server/pkg/llm"
)

func main() {
	cfg := config.LoadLiteConfig()

	logger := logrus.New()
	if cfg.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	// Stdout carries the MCP protocol stream
	logger.SetOutput(os.Stderr)

	log.SetOutput(os.Stderr)
	log.Printf("Starting clinical scales MCP server with transport: %s", cfg.Transport)
	log.Printf("Data directory: %s", cfg.DataDir)

	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	catalogStore, err := catalog.NewSQLiteStore(cfg.CatalogDBPath())
	if err != nil {
		log.Fatalf("Failed to create catalog store: %v", err)
	}
	defer catalogStore.Close()

	cachedCatalog, err := catalog.NewCachedStore(catalogStore, domain.CacheConfig{
		MaxEntries: cfg.CacheMaxItems,
		DefaultTTL: cfg.CacheTTL,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to create catalog cache: %v", err)
	}
	defer cachedCatalog.Close()

	sessionStore, err := session.NewSQLiteStore(cfg.SessionDBPath())
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	defer sessionStore.Close()

	llmConfig := domain.LLMConfig{
		BaseURL:         cfg.LLMBaseURL,
		APIKey:          cfg.LLMAPIKey,
		ExtractionModel: cfg.ExtractionModel,
		SynthesisModel:  cfg.SynthesisModel,
		MaxTokens:       cfg.LLMMaxTokens,
		Timeout:         cfg.LLMTimeout,
		RateLimit:       cfg.LLMRateLimit,
	}
	registry := formula.NewRegistry(logger)
	if err := service.VerifyFormulaCoverage(context.Background(), cachedCatalog, registry, logger); err != nil {
		log.Fatalf("Formula coverage check failed: %v", err)
	}

	model := llm.NewResilientClient(llm.NewClient(llmConfig, logger), logger)

	pipeline := service.NewPipeline(
		catalog.NewResolver(cachedCatalog, logger),
		extraction.NewExtractor(model, llmConfig.ExtractionModel, logger),
		normalize.NewNormalizer(units.NewConverter(), logger),
		service.NewEvaluator(registry, logger),
		service.NewSynthesizer(model, llmConfig.SynthesisModel, llmConfig.MaxTokens, logger),
		sessionStore,
		logger,
	)

	server, err := mcp.NewServer(pipeline, cachedCatalog, logger)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutdown signal received, gracefully shutting down...")
		cancel()
		// Give in-flight tool calls a moment to finish
		time.Sleep(time.Second)
	}()

	if err := server.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("MCP server failed: %v", err)
	}

	log.Println("Clinical scales MCP server stopped")
}
