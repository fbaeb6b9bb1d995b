package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/rakibul/coursebot-go/internal/catalog"
	"github.com/rakibul/coursebot-go/internal/logger"
)

// Neo4jConfig holds the connection settings for the Neo4j store.
type Neo4jConfig struct {
	URI      string
	User     string
	Password string
	Database string // Empty = driver default database
}

// Neo4jStore implements Store against a Neo4j server using the official
// driver. A session is acquired per call and released on every exit path;
// the driver's own pool serializes concurrent upserts on the same key.
type Neo4jStore struct {
	driver   neo4j.DriverWithContext
	database string
	log      *logger.Logger
}

var _ Store = (*Neo4jStore)(nil)

// NewNeo4j creates a Neo4j-backed store. The connection is lazy; use Health
// to probe reachability.
func NewNeo4j(cfg Neo4jConfig, log *logger.Logger) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	return &Neo4jStore{
		driver:   driver,
		database: cfg.Database,
		log:      log.WithModule("graph"),
	}, nil
}

func (s *Neo4jStore) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: s.database,
	})
}

// Health runs a trivial query to probe the server.
func (s *Neo4jStore) Health(ctx context.Context) error {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.Run(ctx, "RETURN 1", nil)
	if err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	return nil
}

// EnsureConstraints applies the four uniqueness constraints. Each statement
// is idempotent (IF NOT EXISTS), so repeated runs are safe.
func (s *Neo4jStore) EnsureConstraints(ctx context.Context) error {
	statements := []string{
		"CREATE CONSTRAINT course_code_unique IF NOT EXISTS FOR (c:Course) REQUIRE c.code IS UNIQUE",
		"CREATE CONSTRAINT teacher_name_unique IF NOT EXISTS FOR (t:Teacher) REQUIRE t.name IS UNIQUE",
		"CREATE CONSTRAINT department_name_unique IF NOT EXISTS FOR (d:Department) REQUIRE d.name IS UNIQUE",
		"CREATE CONSTRAINT semester_name_unique IF NOT EXISTS FOR (s:Semester) REQUIRE s.name IS UNIQUE",
	}

	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	for _, stmt := range statements {
		result, err := session.Run(ctx, stmt, nil)
		if err != nil {
			return fmt.Errorf("failed to apply constraint: %w", err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return fmt.Errorf("failed to apply constraint: %w", err)
		}
	}
	return nil
}

// UpsertCourse merges the course and its relationships. MERGE on the natural
// keys makes repeated upserts of the same course converge to the same
// node/relationship set without duplication.
func (s *Neo4jStore) UpsertCourse(ctx context.Context, course catalog.Course) error {
	const cypher = `
	MERGE (c:Course {code: $code})
	ON CREATE SET c.title = $title, c.credit = $credit
	ON MATCH SET c.title = $title, c.credit = $credit
	MERGE (t:Teacher {name: $teacher})
	MERGE (d:Department {name: $dept})
	MERGE (s:Semester {name: $semester})
	MERGE (c)-[:TAUGHT_BY]->(t)
	MERGE (c)-[:BELONGS_TO]->(d)
	MERGE (c)-[:OFFERED_IN]->(s)
	`

	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, map[string]any{
		"code":     course.Code,
		"title":    course.Title,
		"credit":   course.Credit,
		"teacher":  course.Teacher,
		"dept":     course.Dept,
		"semester": course.Semester,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert course %s: %w", course.Code, err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return fmt.Errorf("failed to upsert course %s: %w", course.Code, err)
	}
	return nil
}

// Summary returns aggregate node and relationship counts.
func (s *Neo4jStore) Summary(ctx context.Context) (Summary, error) {
	const cypher = `
	MATCH (n)
	OPTIONAL MATCH ()-[r]->()
	RETURN count(DISTINCT n) AS nodes, count(r) AS rels
	`

	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to query summary: %w", err)
	}

	record, err := result.Single(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read summary: %w", err)
	}

	return Summary{
		Nodes: int64FromRecord(record, "nodes"),
		Edges: int64FromRecord(record, "rels"),
	}, nil
}

// Export returns the full graph in the frontend DTO shape. Element IDs are
// used as stable node and edge identifiers.
func (s *Neo4jStore) Export(ctx context.Context) (Export, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	nodeResult, err := session.Run(ctx,
		"MATCH (n) RETURN elementId(n) AS id, labels(n)[0] AS label, properties(n) AS props", nil)
	if err != nil {
		return Export{}, fmt.Errorf("failed to export nodes: %w", err)
	}

	export := Export{Nodes: []Node{}, Edges: []Edge{}}
	for nodeResult.Next(ctx) {
		record := nodeResult.Record()
		export.Nodes = append(export.Nodes, Node{
			ID:    stringFromRecord(record, "id"),
			Type:  stringFromRecord(record, "label"),
			Props: mapFromRecord(record, "props"),
		})
	}
	if err := nodeResult.Err(); err != nil {
		return Export{}, fmt.Errorf("failed to export nodes: %w", err)
	}

	edgeResult, err := session.Run(ctx,
		"MATCH (a)-[r]->(b) RETURN elementId(r) AS id, type(r) AS type, elementId(a) AS source, elementId(b) AS target", nil)
	if err != nil {
		return Export{}, fmt.Errorf("failed to export edges: %w", err)
	}

	for edgeResult.Next(ctx) {
		record := edgeResult.Record()
		export.Edges = append(export.Edges, Edge{
			ID:     stringFromRecord(record, "id"),
			Type:   stringFromRecord(record, "type"),
			Source: stringFromRecord(record, "source"),
			Target: stringFromRecord(record, "target"),
		})
	}
	if err := edgeResult.Err(); err != nil {
		return Export{}, fmt.Errorf("failed to export edges: %w", err)
	}

	return export, nil
}

// CoursesByTeacher returns courses taught by the teacher, ordered by code.
func (s *Neo4jStore) CoursesByTeacher(ctx context.Context, teacher string) ([]CourseRef, error) {
	const cypher = `
	MATCH (t:Teacher {name: $teacher})<-[:TAUGHT_BY]-(c:Course)
	RETURN c.code AS code, c.title AS title
	ORDER BY c.code
	`
	return s.lookupCourses(ctx, cypher, map[string]any{"teacher": teacher})
}

// CoursesByDept returns courses in the department, ordered by code.
func (s *Neo4jStore) CoursesByDept(ctx context.Context, dept string) ([]CourseRef, error) {
	const cypher = `
	MATCH (d:Department {name: $dept})<-[:BELONGS_TO]-(c:Course)
	RETURN c.code AS code, c.title AS title
	ORDER BY c.code
	`
	return s.lookupCourses(ctx, cypher, map[string]any{"dept": dept})
}

// CoursesBySemester returns courses offered in the semester, ordered by code.
func (s *Neo4jStore) CoursesBySemester(ctx context.Context, semester string) ([]CourseRef, error) {
	const cypher = `
	MATCH (s:Semester {name: $semester})<-[:OFFERED_IN]-(c:Course)
	RETURN c.code AS code, c.title AS title
	ORDER BY c.code
	`
	return s.lookupCourses(ctx, cypher, map[string]any{"semester": semester})
}

func (s *Neo4jStore) lookupCourses(ctx context.Context, cypher string, params map[string]any) ([]CourseRef, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("failed to look up courses: %w", err)
	}

	var refs []CourseRef
	for result.Next(ctx) {
		record := result.Record()
		refs = append(refs, CourseRef{
			Code:  stringFromRecord(record, "code"),
			Title: stringFromRecord(record, "title"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to look up courses: %w", err)
	}
	return refs, nil
}

// Close shuts down the underlying driver and its connection pool.
func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func stringFromRecord(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return ""
	}
	str, _ := value.(string)
	return str
}

func int64FromRecord(record *neo4j.Record, key string) int64 {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return 0
	}
	n, _ := value.(int64)
	return n
}

func mapFromRecord(record *neo4j.Record, key string) map[string]any {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return map[string]any{}
	}
	m, _ := value.(map[string]any)
	if m == nil {
		return map[string]any{}
	}
	return m
}
