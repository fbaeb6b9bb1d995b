// Package main provides the course chatbot server entry point.
package main

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rakibul/coursebot-go/internal/catalog"
	"github.com/rakibul/coursebot-go/internal/chatbot"
	domerrors "github.com/rakibul/coursebot-go/internal/errors"
	"github.com/rakibul/coursebot-go/internal/graph"
)

// chatRequest is the body of POST /chat.
type chatRequest struct {
	Text string `json:"text" binding:"required"`
}

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, bot *chatbot.Bot, cat *catalog.Catalog, store graph.Store, registry *prometheus.Registry, staticDir string) {
	// Chat endpoint
	router.POST("/chat", func(c *gin.Context) {
		var req chatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		result := bot.Process(c.Request.Context(), req.Text)
		c.JSON(http.StatusOK, result)
	})

	// Health endpoint reporting graph reachability alongside service status
	router.GET("/health", func(c *gin.Context) {
		var graphErr any
		neo4jStatus := "ok"
		if err := probeGraph(c.Request.Context(), store); err != nil {
			neo4jStatus = "down"
			graphErr = err.Error()
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"neo4j":  neo4jStatus,
			"error":  graphErr,
		})
	})

	// Graph inspection endpoints. Failures degrade to zero values with an
	// error field rather than a non-200 status so the frontend can always
	// render something.
	router.GET("/graph/summary", func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := probeGraph(ctx, store); err != nil {
			c.JSON(http.StatusOK, gin.H{"nodes": 0, "edges": 0, "error": err.Error()})
			return
		}
		summary, err := store.Summary(ctx)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"nodes": 0, "edges": 0, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
	})

	router.GET("/graph/export", func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := probeGraph(ctx, store); err != nil {
			c.JSON(http.StatusOK, gin.H{"nodes": []graph.Node{}, "edges": []graph.Edge{}, "error": err.Error()})
			return
		}
		export, err := store.Export(ctx)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"nodes": []graph.Node{}, "edges": []graph.Edge{}, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, export)
	})

	// Liveness Probe - checks if the application is alive (minimal check)
	// This should NEVER check dependencies - only that the process is running
	healthzHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthzHandler)
	router.HEAD("/healthz", healthzHandler)

	// Readiness Probe - the catalog is loaded at startup so the service is
	// ready as soon as it listens; graph state is reported but never gates
	readyHandler := func(c *gin.Context) {
		graphState := "down"
		if err := probeGraph(c.Request.Context(), store); err == nil {
			graphState = "ok"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ready",
			"courses": cat.Len(),
			"neo4j":   graphState,
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Optional static frontend
	if staticDir != "" {
		router.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(staticDir, "index.html"))
		})
		router.GET("/graph", func(c *gin.Context) {
			c.File(filepath.Join(staticDir, "graph.html"))
		})
		router.NoRoute(func(c *gin.Context) {
			if c.Request.Method == http.MethodGet {
				c.File(filepath.Join(staticDir, filepath.Clean(c.Request.URL.Path)))
				return
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
	} else {
		rootHandler := func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"service": "coursebot",
				"status":  "ok",
			})
		}
		router.GET("/", rootHandler)
		router.HEAD("/", rootHandler)
	}
}

// probeGraph checks graph reachability with a bounded timeout. A nil store
// reports not configured.
func probeGraph(ctx context.Context, store graph.Store) error {
	if store == nil {
		return domerrors.ErrGraphNotConfigured
	}
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return store.Health(probeCtx)
}
