// Package graph defines the knowledge graph store used as a denormalized,
// lazily populated index over the course catalog, plus its Neo4j and
// in-memory implementations.
//
// The graph is a cache/index, never the source of truth: every operation
// converts failures into error values at this boundary and callers fall back
// to the catalog instead of retrying.
package graph

import (
	"context"

	"github.com/rakibul/coursebot-go/internal/catalog"
)

// Node labels and relationship types in the knowledge graph.
const (
	LabelCourse     = "Course"
	LabelTeacher    = "Teacher"
	LabelDepartment = "Department"
	LabelSemester   = "Semester"

	RelTaughtBy  = "TAUGHT_BY"
	RelBelongsTo = "BELONGS_TO"
	RelOfferedIn = "OFFERED_IN"
)

// CourseRef is a lightweight course reference returned by keyed lookups,
// ordered by code.
type CourseRef struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// Summary is the aggregate node and relationship count of the graph.
type Summary struct {
	Nodes int64 `json:"nodes"`
	Edges int64 `json:"edges"`
}

// Node is a graph node in the export format consumed by visualization
// frontends.
type Node struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

// Edge is a directed relationship in the export format.
type Edge struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Export is the full graph dump: all nodes and all edges.
type Export struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Store is the knowledge graph collaborator interface. Implementations must
// never panic across this boundary; every failure is an error return. Upserts
// are idempotent: repeated calls with the same course converge to the same
// node and relationship set.
type Store interface {
	// Health probes the store with a single lightweight query.
	// A nil error means the store is reachable.
	Health(ctx context.Context) error

	// EnsureConstraints idempotently applies the uniqueness constraints on
	// course code, teacher name, department name and semester name.
	EnsureConstraints(ctx context.Context) error

	// UpsertCourse merges the course node, its teacher/department/semester
	// nodes and the three relationships between them.
	UpsertCourse(ctx context.Context, course catalog.Course) error

	// Summary returns the aggregate node and relationship counts.
	Summary(ctx context.Context) (Summary, error)

	// Export returns every node and edge in the graph.
	Export(ctx context.Context) (Export, error)

	// CoursesByTeacher returns courses taught by the exact teacher name,
	// ordered by code. An empty slice means no match, not an error.
	CoursesByTeacher(ctx context.Context, teacher string) ([]CourseRef, error)

	// CoursesByDept returns courses belonging to the exact department name,
	// ordered by code.
	CoursesByDept(ctx context.Context, dept string) ([]CourseRef, error)

	// CoursesBySemester returns courses offered in the exact semester name,
	// ordered by code.
	CoursesBySemester(ctx context.Context, semester string) ([]CourseRef, error)

	// Close releases the underlying connections.
	Close(ctx context.Context) error
}
