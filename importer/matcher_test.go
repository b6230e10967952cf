package importer

import (
	"testing"
	"time"

	courseModels "certhub/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourses() []courseModels.Course {
	cpr := courseModels.Course{Name: "CPR Level C", ExpiryMonths: 24}
	cpr.ID = 1
	fa := courseModels.Course{Name: "First Aid Basic", ExpiryMonths: 36}
	fa.ID = 2
	return []courseModels.Course{cpr, fa}
}

func row(name, courseName, issueDate string) Row {
	return Row{Fields: map[string]string{
		ColStudentName: name,
		ColCourse:      courseName,
		ColIssueDate:   issueDate,
	}}
}

func TestMatchRowsPartition(t *testing.T) {
	rows := []Row{
		row("Jane Doe", "CPR Level C", "2025-01-01"),
		row("John Roe", "first aid basic", "2025-02-01"), // case-insensitive course match
		row("", "CPR Level C", ""),                       // missing name -> invalid
		row("Mary Major", "", ""),                        // missing course -> invalid
		row("Rick Roe", "Underwater Basket Weaving", ""), // unknown course -> mismatched
	}

	result := MatchRows(rows, testCourses())

	require.Len(t, result.Valid, 2)
	require.Len(t, result.Invalid, 2)
	require.Len(t, result.Mismatched, 1)

	assert.Equal(t, uint(1), result.Valid[0].Course.ID)
	assert.Equal(t, uint(2), result.Valid[1].Course.ID)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), result.Valid[0].IssueDate)

	assert.Contains(t, result.Invalid[0].Warnings, "missing student name")
	assert.Contains(t, result.Invalid[1].Warnings, "missing course")
	assert.Contains(t, result.Mismatched[0].Warnings[0], "Underwater Basket Weaving")
}

func TestMatchRowsEmptyIssueDateDefaultsToNow(t *testing.T) {
	result := MatchRows([]Row{row("Jane Doe", "CPR Level C", "")}, testCourses())
	require.Len(t, result.Valid, 1)
	assert.WithinDuration(t, time.Now(), result.Valid[0].IssueDate, time.Minute)
}
