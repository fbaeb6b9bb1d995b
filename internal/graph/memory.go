package graph

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rakibul/coursebot-go/internal/catalog"
	domerrors "github.com/rakibul/coursebot-go/internal/errors"
)

// MemoryStore is an in-memory Store implementation. It backs tests as a
// swap-in double for the Neo4j store and doubles as a development mode
// backend when no Neo4j server is available.
type MemoryStore struct {
	mu                 sync.RWMutex
	nodes              map[string]Node
	edges              map[string]Edge
	courses            map[string]catalog.Course
	healthy            bool
	forcedErr          error
	upsertErr          error
	constraintsApplied bool
	upsertCalls        int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty, healthy in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes:   make(map[string]Node),
		edges:   make(map[string]Edge),
		courses: make(map[string]catalog.Course),
		healthy: true,
	}
}

// SetHealthy toggles the health probe result.
func (m *MemoryStore) SetHealthy(healthy bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthy = healthy
}

// SetError forces every operation to fail with err until reset with nil.
func (m *MemoryStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forcedErr = err
}

// SetUpsertError makes only UpsertCourse fail with err, leaving the health
// probe and reads intact. Reset with nil.
func (m *MemoryStore) SetUpsertError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertErr = err
}

// UpsertCalls returns how many upserts were attempted, for tests asserting
// that short-circuit paths never write.
func (m *MemoryStore) UpsertCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.upsertCalls
}

// ConstraintsApplied reports whether EnsureConstraints has run.
func (m *MemoryStore) ConstraintsApplied() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.constraintsApplied
}

// Health reports the configured health state.
func (m *MemoryStore) Health(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if !m.healthy {
		return domerrors.ErrGraphUnavailable
	}
	return nil
}

// EnsureConstraints records that constraints were applied. The map-keyed
// node set enforces natural-key uniqueness structurally.
func (m *MemoryStore) EnsureConstraints(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return m.forcedErr
	}
	m.constraintsApplied = true
	return nil
}

// UpsertCourse merges the course, its related nodes and relationships.
// Map keys are the natural keys, so repeated upserts of the same course
// leave node and edge counts unchanged.
func (m *MemoryStore) UpsertCourse(ctx context.Context, course catalog.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertCalls++
	if m.forcedErr != nil {
		return m.forcedErr
	}
	if m.upsertErr != nil {
		return m.upsertErr
	}

	courseID := nodeID(LabelCourse, course.Code)
	teacherID := nodeID(LabelTeacher, course.Teacher)
	deptID := nodeID(LabelDepartment, course.Dept)
	semesterID := nodeID(LabelSemester, course.Semester)

	m.nodes[courseID] = Node{
		ID:   courseID,
		Type: LabelCourse,
		Props: map[string]any{
			"code":   course.Code,
			"title":  course.Title,
			"credit": course.Credit,
		},
	}
	m.nodes[teacherID] = Node{ID: teacherID, Type: LabelTeacher, Props: map[string]any{"name": course.Teacher}}
	m.nodes[deptID] = Node{ID: deptID, Type: LabelDepartment, Props: map[string]any{"name": course.Dept}}
	m.nodes[semesterID] = Node{ID: semesterID, Type: LabelSemester, Props: map[string]any{"name": course.Semester}}

	for _, edge := range []Edge{
		{Type: RelTaughtBy, Source: courseID, Target: teacherID},
		{Type: RelBelongsTo, Source: courseID, Target: deptID},
		{Type: RelOfferedIn, Source: courseID, Target: semesterID},
	} {
		edge.ID = edge.Source + "-" + edge.Type + "->" + edge.Target
		m.edges[edge.ID] = edge
	}

	m.courses[course.Code] = course
	return nil
}

// Summary returns the current node and edge counts.
func (m *MemoryStore) Summary(ctx context.Context) (Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.forcedErr != nil {
		return Summary{}, m.forcedErr
	}
	return Summary{Nodes: int64(len(m.nodes)), Edges: int64(len(m.edges))}, nil
}

// Export returns all nodes and edges sorted by ID for stable output.
func (m *MemoryStore) Export(ctx context.Context) (Export, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.forcedErr != nil {
		return Export{}, m.forcedErr
	}

	export := Export{Nodes: make([]Node, 0, len(m.nodes)), Edges: make([]Edge, 0, len(m.edges))}
	for _, node := range m.nodes {
		export.Nodes = append(export.Nodes, node)
	}
	for _, edge := range m.edges {
		export.Edges = append(export.Edges, edge)
	}

	sort.Slice(export.Nodes, func(i, j int) bool { return export.Nodes[i].ID < export.Nodes[j].ID })
	sort.Slice(export.Edges, func(i, j int) bool { return export.Edges[i].ID < export.Edges[j].ID })
	return export, nil
}

// CoursesByTeacher returns synced courses taught by the teacher, by code.
func (m *MemoryStore) CoursesByTeacher(ctx context.Context, teacher string) ([]CourseRef, error) {
	return m.lookup(func(c catalog.Course) bool { return c.Teacher == teacher })
}

// CoursesByDept returns synced courses in the department, by code.
func (m *MemoryStore) CoursesByDept(ctx context.Context, dept string) ([]CourseRef, error) {
	return m.lookup(func(c catalog.Course) bool { return c.Dept == dept })
}

// CoursesBySemester returns synced courses offered in the semester, by code.
func (m *MemoryStore) CoursesBySemester(ctx context.Context, semester string) ([]CourseRef, error) {
	return m.lookup(func(c catalog.Course) bool { return c.Semester == semester })
}

func (m *MemoryStore) lookup(match func(catalog.Course) bool) ([]CourseRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}

	var refs []CourseRef
	for _, course := range m.courses {
		if match(course) {
			refs = append(refs, CourseRef{Code: course.Code, Title: course.Title})
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Code < refs[j].Code })
	return refs, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close(ctx context.Context) error {
	return nil
}

func nodeID(label, key string) string {
	return strings.ToLower(label) + ":" + key
}
