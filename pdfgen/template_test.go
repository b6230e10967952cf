package pdfgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	// full contract, mixed case
	assert.Empty(t, MissingFields([]string{"name", "Course", "ISSUE", " expiry "}))

	// one missing
	assert.Equal(t, []string{FieldExpiry}, MissingFields([]string{"NAME", "COURSE", "ISSUE"}))

	// everything missing, listed in contract order
	assert.Equal(t, RequiredFields, MissingFields(nil))

	// unrelated fields do not satisfy the contract
	assert.Equal(t,
		[]string{FieldCourse, FieldIssue, FieldExpiry},
		MissingFields([]string{"NAME", "SIGNATURE", "WATERMARK"}))
}

func TestFieldValues(t *testing.T) {
	data := CertificateData{
		StudentName: "Jane Doe",
		CourseName:  "cpr Level c",
		IssueDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:  time.Date(2026, 12, 22, 0, 0, 0, 0, time.UTC),
	}

	values := data.FieldValues()
	assert.Equal(t, "Jane Doe", values[FieldName])
	assert.Equal(t, "CPR LEVEL C", values[FieldCourse]) // always upper-cased
	assert.Equal(t, "Jan 1, 2025", values[FieldIssue])
	assert.Equal(t, "Dec 22, 2026", values[FieldExpiry])
}

func TestFieldConfigCoversContract(t *testing.T) {
	// every required field must have a font configuration, or filling would
	// hard-fail on a valid template
	for _, field := range RequiredFields {
		spec, ok := fieldConfig[field]
		assert.True(t, ok, "field %s has no config", field)
		assert.Contains(t, RequiredFonts, spec.FontKey)
		assert.Greater(t, spec.Size, 0.0)
	}
}

func TestFetchTemplateRequiresURL(t *testing.T) {
	_, err := FetchTemplate("")
	assert.Error(t, err)
}
