package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeaderAliases(t *testing.T) {
	cases := map[string]string{
		"Student Name":  ColStudentName,
		"STUDENT NAME":  ColStudentName,
		" student  name ": ColStudentName,
		"Full Name":     ColStudentName,
		"Email Address": ColEmail,
		"e-mail":        ColEmail,
		"Issue Date":    ColIssueDate,
		"Date Issued":   ColIssueDate,
		"Length":        ColLength,
		"Duration":      ColLength,
		"Course":        ColCourse,
		"course name":   ColCourse,
		"First Aid":     ColFirstAidLevel,
		"CPR":           ColCPRLevel,
		"cpr level":     ColCPRLevel,
		"Instructor":    ColInstructor,
		"Taught By":     ColInstructor,
		"Instructor Level": ColInstructorLevel,
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeHeader(raw), "header %q", raw)
	}
}

func TestNormalizeHeaderPassthrough(t *testing.T) {
	// headers outside the alias table pass through trimmed but otherwise
	// untouched
	assert.Equal(t, "Shoe Size", NormalizeHeader("  Shoe Size "))
	assert.Equal(t, "Notes", NormalizeHeader("Notes"))
}
