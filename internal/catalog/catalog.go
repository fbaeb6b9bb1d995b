// Package catalog provides the immutable in-memory course dataset.
// The catalog is loaded once at startup and is the single source of truth
// for all course answers; the knowledge graph is only a derived index.
package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"slices"
	"strings"

	domerrors "github.com/rakibul/coursebot-go/internal/errors"
)

// Course is a single course record. Code is the natural key used everywhere:
// catalog lookup, graph node identity, and reply formatting.
type Course struct {
	Code     string `json:"course"`
	Title    string `json:"title"`
	Teacher  string `json:"teacher"`
	Dept     string `json:"dept"`
	Semester string `json:"semester"`
	Credit   int    `json:"credit"`
}

// Catalog is an immutable indexed view over the course records.
type Catalog struct {
	courses   []Course
	byCode    map[string]Course
	teachers  []string
	depts     []string
	semesters []string
}

// New builds a catalog from course records. Codes are normalized to upper
// case; on duplicate codes the last record wins.
func New(courses []Course) *Catalog {
	c := &Catalog{
		courses: make([]Course, 0, len(courses)),
		byCode:  make(map[string]Course, len(courses)),
	}

	for _, course := range courses {
		course.Code = strings.ToUpper(strings.TrimSpace(course.Code))
		c.courses = append(c.courses, course)
		c.byCode[course.Code] = course
	}

	c.teachers = distinctByLength(c.courses, func(course Course) string { return course.Teacher })
	c.depts = distinctByLength(c.courses, func(course Course) string { return course.Dept })
	c.semesters = distinctByLength(c.courses, func(course Course) string { return course.Semester })

	return c
}

// Load reads course records from a JSON file. A UTF-8 byte order mark is
// tolerated since some datasets are exported with one.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, domerrors.NewCatalogError(path, err)
	}

	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	var courses []Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, domerrors.NewCatalogError(path, err)
	}
	if len(courses) == 0 {
		return nil, domerrors.NewCatalogError(path, domerrors.ErrEmptyCatalog)
	}

	return New(courses), nil
}

// Len returns the number of course records.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Courses returns all course records in dataset order.
// The returned slice is a copy; the catalog itself never mutates.
func (c *Catalog) Courses() []Course {
	out := make([]Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// ByCode looks up a course by its canonical code (case-insensitive).
func (c *Catalog) ByCode(code string) (Course, bool) {
	course, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return course, ok
}

// ByTeacher returns all courses taught by the exact teacher name,
// in dataset order.
func (c *Catalog) ByTeacher(teacher string) []Course {
	var out []Course
	for _, course := range c.courses {
		if course.Teacher == teacher {
			out = append(out, course)
		}
	}
	return out
}

// ByDept returns all courses in the department (case-insensitive),
// in dataset order.
func (c *Catalog) ByDept(dept string) []Course {
	var out []Course
	for _, course := range c.courses {
		if strings.EqualFold(course.Dept, dept) {
			out = append(out, course)
		}
	}
	return out
}

// BySemester returns all courses offered in the semester (case-insensitive),
// in dataset order.
func (c *Catalog) BySemester(semester string) []Course {
	var out []Course
	for _, course := range c.courses {
		if strings.EqualFold(course.Semester, semester) {
			out = append(out, course)
		}
	}
	return out
}

// Teachers returns the distinct teacher names, longest first.
// Longest-first ordering lets substring matchers prefer "Dr. Jane Smith"
// over a shorter name like "Jane" contained within it.
func (c *Catalog) Teachers() []string {
	return c.teachers
}

// Depts returns the distinct department codes, longest first.
func (c *Catalog) Depts() []string {
	return c.depts
}

// Semesters returns the distinct semester names, longest first.
func (c *Catalog) Semesters() []string {
	return c.semesters
}

// distinctByLength extracts distinct non-empty values sorted by descending
// length, ties broken alphabetically so the ordering is deterministic.
func distinctByLength(courses []Course, key func(Course) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, course := range courses {
		v := key(course)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	slices.SortFunc(out, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return out
}
