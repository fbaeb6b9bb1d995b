package chatbot

// Reply templates. Every reply is a bilingual pair: the local phrase first,
// the English parenthetical second. The pairing is a fixed presentation
// contract, so these strings are treated as frozen.
const (
	replyHelp = "Commands: course teacher/title/credit/semester, teacher courses, dept courses, " +
		"semester courses, graph status. (Try: 'who teaches CSE411', 'CSE dept courses')"

	replyUnknown = "Sorry, bujhte parini. (Sorry, I could not understand.)"

	replyGraphDown         = "Graph unavailable. Neo4j is not running."
	replyGraphSummaryError = "Graph summary not available right now."
	replyGraphSummary      = "Graph summary: %d nodes, %d edges. (KG has %d nodes and %d edges.)"

	replyCourseNotFound = "Course code not found. (No matching course.)"
	replyCourseTeacher  = "%s course er teacher: %s. (Teacher of %s is %s.)"
	replyCourseTitle    = "%s course er title: %s. (Title of %s is %s.)"
	replyCourseCredit   = "%s course er credit: %d. (Credits of %s are %d.)"
	replyCourseSemester = "%s course offered in: %s. (%s is offered in %s.)"
	replyCourseInfo     = "%s: %s, %s, %d credit, %s. (%s course info: %s, teacher %s, %d credits, offered in %s.)"

	replyTeacherNotFound  = "Teacher name not found. (Try a full name.)"
	replyTeacherNoCourses = "No courses found for that teacher."
	replyTeacherCourses   = "%s er courses: %s. (Courses taught by %s: %s.)"

	replyDeptNotFound  = "Department not found. (Try: CSE department courses.)"
	replyDeptNoCourses = "No courses found for that department."
	replyDeptCourses   = "%s department er courses: %s. (Courses in %s department: %s.)"

	replySemesterNotFound  = "Semester not found. (Try: Spring 2025 courses.)"
	replySemesterNoCourses = "No courses found for that semester."
	replySemesterCourses   = "%s er courses: %s. (Courses offered in %s: %s.)"

	// advisorySuffix is appended to resolved-course replies whenever the
	// graph is configured but unreachable.
	advisorySuffix = " Neo4j down, dataset result dekhacchi."
)
