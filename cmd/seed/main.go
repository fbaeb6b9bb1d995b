// Package main provides the bulk seeding tool that loads the course
// dataset into the Neo4j knowledge graph.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rakibul/coursebot-go/internal/catalog"
	"github.com/rakibul/coursebot-go/internal/config"
	"github.com/rakibul/coursebot-go/internal/graph"
	"github.com/rakibul/coursebot-go/internal/logger"
	"github.com/rakibul/coursebot-go/internal/seeder"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)
	log.Info("Starting knowledge graph seeder")

	// Load the course catalog
	cat, err := catalog.Load(cfg.DataPath)
	if err != nil {
		log.WithError(err).WithField("path", cfg.DataPath).Error("Failed to load course catalog")
		os.Exit(1)
	}
	log.WithField("courses", cat.Len()).Info("Course catalog loaded")

	// Connect to Neo4j
	store, err := graph.NewNeo4j(graph.Neo4jConfig{
		URI:      cfg.Neo4jURI,
		User:     cfg.Neo4jUser,
		Password: cfg.Neo4jPassword,
		Database: cfg.Neo4jDatabase,
	}, log)
	if err != nil {
		log.WithError(err).Error("Failed to create Neo4j driver")
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.WithError(err).Error("Failed to close Neo4j driver")
		}
	}()

	// Cancel seeding on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := store.Health(ctx); err != nil {
		log.WithError(err).WithField("uri", cfg.Neo4jURI).Error("Neo4j not reachable")
		os.Exit(1)
	}

	// Seed
	seeded, err := seeder.New(store, log, cfg.SeedWorkers).Run(ctx, cat)
	if err != nil {
		log.WithError(err).Error("Seeding failed")
		os.Exit(1)
	}

	fmt.Printf("Seeded %d/%d courses into the knowledge graph\n", seeded, cat.Len())
}
