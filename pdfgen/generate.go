package pdfgen

import (
	"strings"
	"time"
)

// dates are printed long-form on the document itself
const documentDateLayout = "Jan 2, 2006"

// CertificateData is everything one certificate renders
type CertificateData struct {
	StudentName string
	CourseName  string
	IssueDate   time.Time
	ExpiryDate  time.Time
}

// FieldValues maps the data onto the template's field contract. Course names
// are always upper-cased on the document.
func (d CertificateData) FieldValues() map[string]string {
	return map[string]string{
		FieldName:   d.StudentName,
		FieldCourse: strings.ToUpper(d.CourseName),
		FieldIssue:  d.IssueDate.Format(documentDateLayout),
		FieldExpiry: d.ExpiryDate.Format(documentDateLayout),
	}
}

// GenerateCertificate runs the whole pipeline over one template: parse,
// validate the field contract, embed fonts, fill, flatten. Returns the
// finished document bytes; any stage failure aborts with no partial output.
func GenerateCertificate(templateBytes []byte, data CertificateData, cache *FontCache) ([]byte, error) {
	reader, err := loadTemplate(templateBytes)
	if err != nil {
		return nil, err
	}
	if err := validateForm(reader); err != nil {
		return nil, err
	}
	return fillAndFlatten(reader, data.FieldValues(), cache)
}
