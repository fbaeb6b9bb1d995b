package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	domerrors "github.com/rakibul/coursebot-go/internal/errors"
)

func testCourses() []Course {
	return []Course{
		{Code: "CSE411", Title: "Algorithms", Teacher: "Dr. Jane Smith", Dept: "CSE", Semester: "Fall 2024", Credit: 3},
		{Code: "CSE325", Title: "Operating Systems", Teacher: "Dr. Jane Smith", Dept: "CSE", Semester: "Spring 2025", Credit: 3},
		{Code: "EEE101", Title: "Circuits I", Teacher: "Prof. Karim", Dept: "EEE", Semester: "Fall 2024", Credit: 4},
	}
}

func TestByCode(t *testing.T) {
	cat := New(testCourses())

	tests := []struct {
		name  string
		code  string
		found bool
	}{
		{name: "exact code", code: "CSE411", found: true},
		{name: "lowercase code", code: "cse411", found: true},
		{name: "padded code", code: "  CSE411 ", found: true},
		{name: "unknown code", code: "ZZZ999", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, ok := cat.ByCode(tt.code)
			if ok != tt.found {
				t.Fatalf("ByCode(%q) found=%v, want %v", tt.code, ok, tt.found)
			}
			if ok && course.Code != "CSE411" {
				t.Errorf("Expected CSE411, got %s", course.Code)
			}
		})
	}
}

func TestFilters(t *testing.T) {
	cat := New(testCourses())

	byTeacher := cat.ByTeacher("Dr. Jane Smith")
	if len(byTeacher) != 2 {
		t.Fatalf("Expected 2 courses for teacher, got %d", len(byTeacher))
	}
	if byTeacher[0].Code != "CSE411" || byTeacher[1].Code != "CSE325" {
		t.Errorf("Expected dataset order CSE411, CSE325; got %s, %s", byTeacher[0].Code, byTeacher[1].Code)
	}

	if got := cat.ByDept("cse"); len(got) != 2 {
		t.Errorf("Expected case-insensitive dept filter to return 2, got %d", len(got))
	}
	if got := cat.BySemester("fall 2024"); len(got) != 2 {
		t.Errorf("Expected case-insensitive semester filter to return 2, got %d", len(got))
	}
	if got := cat.ByTeacher("Nobody"); len(got) != 0 {
		t.Errorf("Expected no courses for unknown teacher, got %d", len(got))
	}
}

func TestCandidateListsLongestFirst(t *testing.T) {
	cat := New([]Course{
		{Code: "CSE411", Teacher: "Jane", Dept: "CSE", Semester: "Fall 2024"},
		{Code: "CSE412", Teacher: "Jane Smith", Dept: "PHARM", Semester: "Spring 2025"},
	})

	teachers := cat.Teachers()
	if teachers[0] != "Jane Smith" || teachers[1] != "Jane" {
		t.Errorf("Expected longest-first teachers, got %v", teachers)
	}

	depts := cat.Depts()
	if depts[0] != "PHARM" {
		t.Errorf("Expected PHARM first, got %v", depts)
	}
}

func TestDuplicateCodeLastWins(t *testing.T) {
	cat := New([]Course{
		{Code: "CSE411", Title: "Old"},
		{Code: "cse411", Title: "New"},
	})

	course, ok := cat.ByCode("CSE411")
	if !ok {
		t.Fatal("Expected course to exist")
	}
	if course.Title != "New" {
		t.Errorf("Expected last record to win, got title %s", course.Title)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.json")

	// BOM prefix mirrors datasets exported from spreadsheet tools
	payload := "\xEF\xBB\xBF" + `[{"course":"cse411","title":"Algorithms","teacher":"Dr. A","dept":"CSE","semester":"Fall 2024","credit":3}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("Expected 1 course, got %d", cat.Len())
	}

	course, ok := cat.ByCode("CSE411")
	if !ok {
		t.Fatal("Expected normalized code lookup to succeed")
	}
	if course.Credit != 3 {
		t.Errorf("Expected credit 3, got %d", course.Credit)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("[]"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := Load(empty)
	if !errors.Is(err, domerrors.ErrEmptyCatalog) {
		t.Errorf("Expected ErrEmptyCatalog, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestCoursesReturnsCopy(t *testing.T) {
	cat := New(testCourses())

	got := cat.Courses()
	got[0].Title = "mutated"

	again, _ := cat.ByCode(got[0].Code)
	if again.Title == "mutated" {
		t.Error("Expected catalog to be immutable after Courses() mutation")
	}
}
