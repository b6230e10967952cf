package importer

import (
	"strings"
	"time"

	courseModels "certhub/models/course"
)

// MatchedRow is a parsed row resolved against a known course
type MatchedRow struct {
	Row
	Course    courseModels.Course `json:"-"`
	IssueDate time.Time           `json:"-"`
}

// MatchResult partitions an upload: valid rows proceed to submission, the
// rest are returned to the caller for correction.
type MatchResult struct {
	Valid      []MatchedRow `json:"-"`
	Invalid    []Row        `json:"invalid"`    // missing student name or course
	Mismatched []Row        `json:"mismatched"` // course not found in the catalog
}

// MatchRows resolves each row's course by name (case-insensitive, trimmed)
// against the known course list and flags rows that cannot be submitted.
func MatchRows(rows []Row, courses []courseModels.Course) MatchResult {
	byName := make(map[string]courseModels.Course, len(courses))
	for _, c := range courses {
		byName[strings.ToLower(strings.TrimSpace(c.Name))] = c
	}

	var result MatchResult
	for _, row := range rows {
		name := row.Get(ColStudentName)
		courseName := row.Get(ColCourse)

		if name == "" || courseName == "" {
			if name == "" {
				row.Warnings = append(row.Warnings, "missing student name")
			}
			if courseName == "" {
				row.Warnings = append(row.Warnings, "missing course")
			}
			result.Invalid = append(result.Invalid, row)
			continue
		}

		matched, ok := byName[strings.ToLower(courseName)]
		if !ok {
			row.Warnings = append(row.Warnings, "unknown course \""+courseName+"\"")
			result.Mismatched = append(result.Mismatched, row)
			continue
		}

		issueDate := time.Now()
		if iso := row.Get(ColIssueDate); iso != "" {
			if t, err := time.Parse("2006-01-02", iso); err == nil {
				issueDate = t
			}
		}

		result.Valid = append(result.Valid, MatchedRow{
			Row:       row,
			Course:    matched,
			IssueDate: issueDate,
		})
	}
	return result
}
