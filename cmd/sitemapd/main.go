package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Aanya18/robostaan-sitemap/config"
	"github.com/Aanya18/robostaan-sitemap/internal/api"
	"github.com/Aanya18/robostaan-sitemap/internal/sitemap"
	"github.com/Aanya18/robostaan-sitemap/internal/storage"
	"github.com/Aanya18/robostaan-sitemap/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize storage
	var store storage.Store
	switch cfg.Database.Driver {
	case "sqlite":
		store, err = storage.NewSQLiteStore(cfg.Database.URL)
	default:
		store, err = storage.NewPostgresStore(cfg.Database.URL)
	}
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Initialize database tables
	if err := store.Initialize(); err != nil {
		log.Fatalf("Failed to initialize database tables: %v", err)
	}

	builder := sitemap.NewBuilder(cfg.Site.Origin)

	// Initialize API server
	server := api.NewServer(cfg.Server.Port, store, builder)

	// Setup periodic regeneration
	ticker := time.NewTicker(cfg.GetGenerateDuration())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Write artifacts once at startup so a fresh deploy serves them
	runGenerate(ctx, store, builder, cfg.Generator.OutputDir)

	go func() {
		for {
			select {
			case <-ticker.C:
				log.Println("Starting periodic sitemap generation...")
				runGenerate(ctx, store, builder, cfg.Generator.OutputDir)
			case <-ctx.Done():
				return
			}
		}
	}()

	// Start the API server
	go func() {
		log.Printf("Starting API server on port %d", cfg.Server.Port)
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start API server: %v", err)
		}
	}()

	// Wait for shutdown
	waitForShutdown(cancel, server)
}

func runGenerate(ctx context.Context, store storage.Store, builder *sitemap.Builder, outputDir string) {
	logger, err := utils.NewGenerateLogger()
	if err != nil {
		log.Printf("Failed to create logger: %v", err)
		return
	}
	defer logger.Close()

	logger.LogInfo("Starting sitemap generation for %s", builder.Origin())

	fetcher := sitemap.NewFetcher(store)
	result := fetcher.Fetch(ctx)
	if result.Partial {
		logger.LogWarn("Content fetch degraded, proceeding with partial data:")
		for _, reason := range result.Reasons {
			logger.LogWarn("  - %s", reason)
		}
	}
	logger.LogInfo("Fetched %d blogs and %d courses", len(result.Blogs), len(result.Courses))

	doc := builder.BuildDocument(result)
	xmlStr, err := builder.Sitemap(doc)
	if err != nil {
		logger.LogError("Failed to serialize sitemap: %v", err)
		return
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		logger.LogError("Failed to create output directory: %v", err)
		return
	}

	if err := os.WriteFile(filepath.Join(outputDir, "sitemap.xml"), []byte(xmlStr), 0644); err != nil {
		logger.LogError("Failed to write sitemap.xml: %v", err)
		return
	}

	if err := os.WriteFile(filepath.Join(outputDir, "robots.txt"), []byte(builder.Robots()), 0644); err != nil {
		logger.LogError("Failed to write robots.txt: %v", err)
		return
	}

	logger.LogInfo("Wrote %d URLs to %s", doc.Len(), outputDir)
}

func waitForShutdown(cancel context.CancelFunc, server *api.Server) {
	// Handle system signals for shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutting down...")
	cancel()

	// Graceful server shutdown
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	log.Println("Server shut down gracefully")
}
