package pdfgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/unidoc/unipdf/v3/model"
)

// Template form-field contract
const (
	FieldName   = "NAME"
	FieldCourse = "COURSE"
	FieldIssue  = "ISSUE"
	FieldExpiry = "EXPIRY"
)

// RequiredFields must all exist (case-insensitive) on the template form
var RequiredFields = []string{FieldName, FieldCourse, FieldIssue, FieldExpiry}

// FetchTemplate downloads the certificate template PDF
func FetchTemplate(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("no certificate template URL configured")
	}

	client := resty.New()
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("template fetch returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

// loadTemplate parses template bytes into a PDF reader
func loadTemplate(data []byte) (*model.PdfReader, error) {
	reader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template PDF: %w", err)
	}
	return reader, nil
}

// formFieldNames collects the partial names of every form field
func formFieldNames(reader *model.PdfReader) ([]string, error) {
	acro := reader.AcroForm
	if acro == nil {
		return nil, fmt.Errorf("template has no form fields")
	}

	var names []string
	for _, field := range acro.AllFields() {
		names = append(names, field.PartialName())
	}
	return names, nil
}

// MissingFields reports which of the required form fields are absent from the
// given field-name list, matched case-insensitively
func MissingFields(names []string) []string {
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[strings.ToUpper(strings.TrimSpace(n))] = true
	}

	var missing []string
	for _, required := range RequiredFields {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	return missing
}

// validateForm rejects templates that break the field contract, listing every
// missing field at once
func validateForm(reader *model.PdfReader) error {
	names, err := formFieldNames(reader)
	if err != nil {
		return err
	}
	if missing := MissingFields(names); len(missing) > 0 {
		return fmt.Errorf("template is missing required form fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
