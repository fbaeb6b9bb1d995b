// Package nlu implements pattern-based natural-language understanding for
// course queries: entity extraction against catalog-derived candidate lists
// and keyword-driven intent classification.
//
// Extraction and classification are pure functions of the input text and the
// candidate tables built once at startup, so repeated calls with the same
// catalog always produce identical results.
package nlu

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rakibul/coursebot-go/internal/catalog"
)

// Entities is the bundle of structured values recognized in one utterance.
// Every field is either a full canonical match or empty; there are no
// partial matches.
type Entities struct {
	CourseCode string `json:"course_code,omitempty"`
	Teacher    string `json:"teacher,omitempty"`
	Dept       string `json:"dept,omitempty"`
	Semester   string `json:"semester,omitempty"`
}

var (
	// Course code: 3 letters, optional single space, 3 digits.
	// Applied to uppercased text, so only uppercase letters appear here.
	courseCodeRegex = regexp.MustCompile(`\b([A-Z]{3})\s?([0-9]{3})\b`)

	// Semester: season word followed by a 4-digit year.
	semesterRegex = regexp.MustCompile(`(?i)\b(Spring|Summer|Fall|Autumn|Winter)\s+([0-9]{4})\b`)
)

// Extractor recognizes entities using candidate lists derived from the
// catalog at construction time. It is safe for concurrent use.
type Extractor struct {
	teachers []string       // distinct teacher names, longest first
	deptRe   *regexp.Regexp // nil when the catalog has no departments
}

// NewExtractor builds an extractor over the catalog's candidate lists.
func NewExtractor(cat *catalog.Catalog) *Extractor {
	e := &Extractor{
		teachers: cat.Teachers(),
	}

	depts := cat.Depts()
	if len(depts) > 0 {
		quoted := make([]string, len(depts))
		for i, d := range depts {
			quoted[i] = regexp.QuoteMeta(strings.ToUpper(d))
		}
		// Word boundaries keep a dept code from matching inside a longer
		// token; longest-first alternation prefers the longer code.
		e.deptRe = regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
	}

	return e
}

// Extract pulls the entity bundle out of free text. Only the first course
// code in the text is used; teacher matching is longest-candidate-first
// substring containment.
func (e *Extractor) Extract(text string) Entities {
	textUpper := strings.ToUpper(text)
	textLower := strings.ToLower(text)

	var entities Entities

	if m := courseCodeRegex.FindStringSubmatch(textUpper); m != nil {
		entities.CourseCode = m[1] + m[2]
	}

	entities.Teacher = matchFromList(textLower, e.teachers)

	if e.deptRe != nil {
		if m := e.deptRe.FindStringSubmatch(textUpper); m != nil {
			entities.Dept = m[1]
		}
	}

	if m := semesterRegex.FindStringSubmatch(text); m != nil {
		// cases.Caser carries per-call state, so a fresh one is built here
		// instead of being shared across goroutines.
		title := cases.Title(language.English)
		entities.Semester = title.String(strings.ToLower(m[1])) + " " + m[2]
	}

	return entities
}

// matchFromList returns the first candidate contained in the text.
// Candidates are pre-sorted longest first, so a longer name wins over a
// shorter name that happens to be its substring.
func matchFromList(textLower string, candidates []string) string {
	for _, candidate := range candidates {
		if strings.Contains(textLower, strings.ToLower(candidate)) {
			return candidate
		}
	}
	return ""
}
