package nlu

import (
	"sync"
	"testing"

	"github.com/rakibul/coursebot-go/internal/catalog"
)

func testExtractor() *Extractor {
	cat := catalog.New([]catalog.Course{
		{Code: "CSE411", Title: "Algorithms", Teacher: "Dr. Jane Smith", Dept: "CSE", Semester: "Fall 2024", Credit: 3},
		{Code: "CSE325", Title: "Operating Systems", Teacher: "Jane", Dept: "CSE", Semester: "Spring 2025", Credit: 3},
		{Code: "EEE101", Title: "Circuits I", Teacher: "Prof. Karim", Dept: "EEE", Semester: "Fall 2024", Credit: 4},
		{Code: "PHA110", Title: "Pharmacology", Teacher: "Dr. Liza", Dept: "PHARM", Semester: "Summer 2025", Credit: 2},
	})
	return NewExtractor(cat)
}

func TestExtractCourseCode(t *testing.T) {
	e := testExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain code", text: "CSE411", want: "CSE411"},
		{name: "lowercase", text: "cse 411", want: "CSE411"},
		{name: "mixed case with space", text: "Cse 411 please", want: "CSE411"},
		{name: "embedded in sentence", text: "who teaches CSE411 this term", want: "CSE411"},
		{name: "first match wins", text: "CSE411 or EEE101", want: "CSE411"},
		{name: "no code", text: "who teaches algorithms", want: ""},
		{name: "too many digits", text: "CSE4111", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if got.CourseCode != tt.want {
				t.Errorf("Extract(%q).CourseCode = %q, want %q", tt.text, got.CourseCode, tt.want)
			}
		})
	}
}

func TestExtractTeacherLongestMatch(t *testing.T) {
	e := testExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "full name preferred over substring", text: "courses by dr. jane smith", want: "Dr. Jane Smith"},
		{name: "short name alone", text: "what does jane teach", want: "Jane"},
		{name: "case insensitive", text: "PROF. KARIM courses", want: "Prof. Karim"},
		{name: "no teacher", text: "CSE courses", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if got.Teacher != tt.want {
				t.Errorf("Extract(%q).Teacher = %q, want %q", tt.text, got.Teacher, tt.want)
			}
		})
	}
}

func TestExtractDept(t *testing.T) {
	e := testExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "plain dept", text: "CSE department courses", want: "CSE"},
		{name: "lowercase dept", text: "cse dept courses", want: "CSE"},
		{name: "word boundary blocks longer token", text: "CSEX is not a department", want: ""},
		{name: "longer code preferred", text: "PHARM courses", want: "PHARM"},
		{name: "no dept", text: "who teaches algorithms", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if got.Dept != tt.want {
				t.Errorf("Extract(%q).Dept = %q, want %q", tt.text, got.Dept, tt.want)
			}
		})
	}
}

func TestExtractSemester(t *testing.T) {
	e := testExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "title case", text: "Spring 2025 courses", want: "Spring 2025"},
		{name: "lowercase season", text: "courses offered in fall 2024", want: "Fall 2024"},
		{name: "uppercase season", text: "WINTER 2026", want: "Winter 2026"},
		{name: "autumn accepted", text: "autumn 2024 offerings", want: "Autumn 2024"},
		{name: "no year", text: "spring courses", want: ""},
		{name: "two digit year", text: "fall 24", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			if got.Semester != tt.want {
				t.Errorf("Extract(%q).Semester = %q, want %q", tt.text, got.Semester, tt.want)
			}
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := testExtractor()
	text := "who teaches CSE 411 in fall 2024, dr. jane smith?"

	first := e.Extract(text)
	for i := 0; i < 10; i++ {
		if got := e.Extract(text); got != first {
			t.Fatalf("Extraction not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestExtractCombined(t *testing.T) {
	e := testExtractor()

	got := e.Extract("does dr. jane smith teach cse 411 in the CSE dept in fall 2024?")
	want := Entities{
		CourseCode: "CSE411",
		Teacher:    "Dr. Jane Smith",
		Dept:       "CSE",
		Semester:   "Fall 2024",
	}
	if got != want {
		t.Errorf("Extract combined = %+v, want %+v", got, want)
	}
}

func TestExtractConcurrent(t *testing.T) {
	e := testExtractor()
	want := e.Extract("courses offered in fall 2024")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if got := e.Extract("courses offered in fall 2024"); got != want {
					t.Errorf("Concurrent Extract = %+v, want %+v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
