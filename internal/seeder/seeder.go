// Package seeder bulk-loads the full course catalog into the knowledge
// graph. It is the only component that populates the graph eagerly; normal
// operation relies on the chatbot's lazy write-through instead.
package seeder

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/rakibul/coursebot-go/internal/catalog"
	"github.com/rakibul/coursebot-go/internal/graph"
	"github.com/rakibul/coursebot-go/internal/logger"
)

// Seeder drives idempotent upserts of every catalog record into a Store.
type Seeder struct {
	store   graph.Store
	log     *logger.Logger
	workers int
}

// New creates a seeder with the given upsert concurrency.
func New(store graph.Store, log *logger.Logger, workers int) *Seeder {
	if workers < 1 {
		workers = 1
	}
	return &Seeder{
		store:   store,
		log:     log.WithModule("seeder"),
		workers: workers,
	}
}

// Run applies the uniqueness constraints, then upserts every course with
// bounded concurrency. Individual upsert failures are logged and counted
// but do not abort the run; a constraint failure does.
func (s *Seeder) Run(ctx context.Context, cat *catalog.Catalog) (int, error) {
	if err := s.store.EnsureConstraints(ctx); err != nil {
		return 0, fmt.Errorf("failed to apply constraints: %w", err)
	}

	var seeded atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, course := range cat.Courses() {
		course := course
		g.Go(func() error {
			if err := s.store.UpsertCourse(ctx, course); err != nil {
				s.log.WithError(err).WithField("course", course.Code).Warn("Failed to upsert course")
				return nil // keep seeding the rest
			}
			seeded.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(seeded.Load()), err
	}

	s.log.WithFields(map[string]any{
		"seeded": seeded.Load(),
		"total":  cat.Len(),
	}).Info("Seeding complete")
	return int(seeded.Load()), nil
}
