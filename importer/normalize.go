package importer

import "strings"

// Canonical column names used across every roster upload format
const (
	ColStudentName     = "Student Name"
	ColEmail           = "Email"
	ColIssueDate       = "Issue Date"
	ColLength          = "Length"
	ColCourse          = "Course"
	ColFirstAidLevel   = "First Aid Level"
	ColCPRLevel        = "CPR Level"
	ColInstructorLevel = "Instructor Level"
	ColInstructor      = "Instructor"
)

// RequiredColumns must all be present (after normalization) in every uploaded
// file, regardless of format
var RequiredColumns = []string{ColStudentName, ColEmail, ColIssueDate, ColLength}

// headerAliases maps cleaned-up raw headers to canonical column names.
// Lookup keys are lower-cased with collapsed whitespace, so "STUDENT NAME",
// " student  name " and "Student Name" all resolve the same way.
var headerAliases = map[string]string{
	"student name": ColStudentName,
	"student":      ColStudentName,
	"name":         ColStudentName,
	"full name":    ColStudentName,

	"email":         ColEmail,
	"email address": ColEmail,
	"e-mail":        ColEmail,

	"issue date":  ColIssueDate,
	"date issued": ColIssueDate,
	"course date": ColIssueDate,
	"date":        ColIssueDate,

	"length":        ColLength,
	"course length": ColLength,
	"duration":      ColLength,
	"hours":         ColLength,

	"course":      ColCourse,
	"course name": ColCourse,

	"first aid":       ColFirstAidLevel,
	"first aid level": ColFirstAidLevel,
	"fa level":        ColFirstAidLevel,

	"cpr":       ColCPRLevel,
	"cpr level": ColCPRLevel,

	"instructor level": ColInstructorLevel,

	"instructor":      ColInstructor,
	"instructor name": ColInstructor,
	"taught by":       ColInstructor,
}

// NormalizeHeader maps a raw spreadsheet header to its canonical column name.
// Unmapped headers pass through unchanged (trimmed only).
func NormalizeHeader(raw string) string {
	if canonical, ok := headerAliases[cleanKey(raw)]; ok {
		return canonical
	}
	return strings.TrimSpace(raw)
}

// cleanKey lower-cases and collapses internal whitespace
func cleanKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
