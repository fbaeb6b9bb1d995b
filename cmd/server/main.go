// Package main provides the course chatbot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rakibul/coursebot-go/internal/catalog"
	"github.com/rakibul/coursebot-go/internal/chatbot"
	"github.com/rakibul/coursebot-go/internal/config"
	"github.com/rakibul/coursebot-go/internal/graph"
	"github.com/rakibul/coursebot-go/internal/logger"
	"github.com/rakibul/coursebot-go/internal/metrics"
	"github.com/rakibul/coursebot-go/internal/sentry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.Info("Starting course chatbot server")

	// Initialize Sentry (no-op when DSN is empty)
	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error tracking disabled")
	} else if sentry.IsEnabled() {
		log.WithField("environment", cfg.SentryEnvironment).Info("Sentry initialized")
	}
	defer sentry.Flush(2 * time.Second)

	// Load the course catalog
	cat, err := catalog.Load(cfg.DataPath)
	if err != nil {
		log.WithError(err).WithField("path", cfg.DataPath).Error("Failed to load course catalog")
		os.Exit(1)
	}
	log.WithField("path", cfg.DataPath).
		WithField("courses", cat.Len()).
		Info("Course catalog loaded")

	// Create Prometheus registry
	registry := prometheus.NewRegistry()

	// Register Go and process collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	// Create metrics
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Connect to the knowledge graph (optional)
	var store graph.Store
	if cfg.Neo4jEnabled {
		neoStore, err := graph.NewNeo4j(graph.Neo4jConfig{
			URI:      cfg.Neo4jURI,
			User:     cfg.Neo4jUser,
			Password: cfg.Neo4jPassword,
			Database: cfg.Neo4jDatabase,
		}, log)
		if err != nil {
			log.WithError(err).Warn("Failed to create Neo4j driver, answering from catalog only")
		} else {
			store = neoStore
			defer func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := neoStore.Close(closeCtx); err != nil {
					log.WithError(err).Error("Failed to close Neo4j driver")
				}
			}()

			// The graph is reachable or not per request; a failed probe at
			// startup only downgrades answers, it never blocks them.
			probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := neoStore.Health(probeCtx); err != nil {
				log.WithError(err).Warn("Neo4j not reachable at startup")
			} else {
				log.WithField("uri", cfg.Neo4jURI).Info("Neo4j connected")
			}
			cancel()
		}
	} else {
		log.Info("Neo4j disabled, answering from catalog only")
	}

	// Create the chatbot
	bot := chatbot.New(cat, store, m, log)
	log.Info("Chatbot created")

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(securityHeadersMiddleware())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log, m))

	// Setup routes
	setupRoutes(router, bot, cat, store, registry, cfg.StaticDir)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server stopped")
}
