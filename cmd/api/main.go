package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"molecuview/internal/chem"
	"molecuview/internal/config"
	"molecuview/internal/genai"
	"molecuview/internal/http"
	"molecuview/internal/service"
	"molecuview/internal/storage"
	"molecuview/internal/viewer"
	"molecuview/internal/web"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	historyRepo := storage.NewHistoryRepo(db)
	structureRepo := storage.NewStructureRepo(db)

	// Create external service clients. The generative-AI client is
	// constructed once here with its credential and injected below.
	chemClient := chem.NewClient(cfg.PubChemBaseURL, structureRepo)
	genaiClient := genai.NewClient(cfg.GenAIBaseURL, cfg.GenAIAPIKey, cfg.GenAIModel)
	slog.Info("External clients ready", "pubchem", chemClient.BaseURL, "model", cfg.GenAIModel)

	// Create the search pipeline
	advisor := service.NewAdvisor(genaiClient)
	enricher := service.NewEnricher(genaiClient)
	searcher := service.NewSearcher(chemClient, advisor, enricher, historyRepo)

	// Create the viewer: one rendering surface per process, released on
	// shutdown together with its resize listener.
	hub := viewer.NewHub()
	controller := viewer.NewController(hub, hub)
	defer controller.Close()

	// Create router with dependencies
	deps := &http.Deps{
		SearchService: searcher,
		Viewer:        controller,
		Hub:           hub,
		History:       historyRepo,
		DB:            db,
		IndexHTML:     web.IndexHTML,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
