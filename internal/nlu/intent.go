package nlu

import "strings"

// Intent is the single classified purpose of one utterance.
type Intent string

// The closed set of intents. Classification always yields exactly one,
// defaulting to IntentUnknown.
const (
	IntentHelp            Intent = "help"
	IntentGraphShow       Intent = "graph_show"
	IntentCourseTeacher   Intent = "course_teacher"
	IntentCourseTitle     Intent = "course_title"
	IntentCourseCredit    Intent = "course_credit"
	IntentCourseSemester  Intent = "course_semester"
	IntentCourseInfo      Intent = "course_info"
	IntentTeacherCourses  Intent = "teacher_courses"
	IntentDeptCourses     Intent = "dept_courses"
	IntentSemesterCourses Intent = "semester_courses"
	IntentUnknown         Intent = "unknown"
)

func (i Intent) String() string {
	return string(i)
}

// Keyword families for intent dispatch. Matching is case-insensitive
// substring containment over the whole utterance.
var (
	helpKeywords  = []string{"help", "commands", "what can you do"}
	graphKeywords = []string{"graph", "kg"}

	// Attribute keyword families used when a course code is present.
	teacherAttrKeywords  = []string{"teacher", "teach", "teaches", "instructor"}
	titleAttrKeywords    = []string{"title", "name"}
	creditAttrKeywords   = []string{"credit", "credits"}
	semesterAttrKeywords = []string{"semester", "term"}

	// Listing keyword families: an entity mention alone is not enough to
	// ask for a course list, the utterance must also carry one of these.
	teacherListKeywords  = []string{"courses", "teach", "teaches"}
	deptListKeywords     = []string{"department", "dept", "courses"}
	semesterListKeywords = []string{"courses", "offered"}
)

// Classify maps an utterance plus its extracted entities to one intent.
//
// Precedence, first match wins: help keywords, graph keywords, course-code
// attribute dispatch (defaulting to course_info), teacher listing, dept
// listing, semester listing, unknown. A course code alone is treated as
// course-directed; teacher/dept/semester mentions additionally require a
// listing keyword.
func Classify(text string, entities Entities) Intent {
	textLower := strings.ToLower(text)

	if containsAny(textLower, helpKeywords) {
		return IntentHelp
	}
	if containsAny(textLower, graphKeywords) {
		return IntentGraphShow
	}

	if entities.CourseCode != "" {
		switch {
		case containsAny(textLower, teacherAttrKeywords):
			return IntentCourseTeacher
		case containsAny(textLower, titleAttrKeywords):
			return IntentCourseTitle
		case containsAny(textLower, creditAttrKeywords):
			return IntentCourseCredit
		case containsAny(textLower, semesterAttrKeywords):
			return IntentCourseSemester
		default:
			return IntentCourseInfo
		}
	}

	if entities.Teacher != "" && containsAny(textLower, teacherListKeywords) {
		return IntentTeacherCourses
	}
	if entities.Dept != "" && containsAny(textLower, deptListKeywords) {
		return IntentDeptCourses
	}
	if entities.Semester != "" && containsAny(textLower, semesterListKeywords) {
		return IntentSemesterCourses
	}

	return IntentUnknown
}

func containsAny(textLower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(textLower, k) {
			return true
		}
	}
	return false
}
