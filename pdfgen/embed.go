package pdfgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/unidoc/unipdf/v3/annotator"
	"github.com/unidoc/unipdf/v3/core"
	"github.com/unidoc/unipdf/v3/model"
)

// fieldSpec fixes which font (and size) each form field is rendered with
type fieldSpec struct {
	FontKey string
	Size    float64
}

// fieldConfig drives per-field font selection. Recipient and course lines use
// the bold face, date lines the regular face.
var fieldConfig = map[string]fieldSpec{
	FieldName:   {FontKey: FontBold, Size: 28},
	FieldCourse: {FontKey: FontBold, Size: 18},
	FieldIssue:  {FontKey: FontRegular, Size: 12},
	FieldExpiry: {FontKey: FontRegular, Size: 12},
}

// fillAndFlatten writes the given values into the template's form fields,
// regenerating each field's appearance with its configured embedded font,
// then flattens the form into static page content. Any failure aborts with
// no partial document.
func fillAndFlatten(reader *model.PdfReader, values map[string]string, cache *FontCache) ([]byte, error) {
	embedded, err := embedFonts(cache)
	if err != nil {
		return nil, err
	}

	acro := reader.AcroForm
	if acro == nil {
		return nil, fmt.Errorf("template has no form fields")
	}

	// index fields by upper-cased partial name
	fields := make(map[string]*model.PdfField)
	for _, field := range acro.AllFields() {
		fields[strings.ToUpper(strings.TrimSpace(field.PartialName()))] = field
	}

	fallbacks := make(map[string]*annotator.AppearanceFont, len(values))
	for name, value := range values {
		spec, ok := fieldConfig[name]
		if !ok {
			return nil, fmt.Errorf("no field configuration for %q", name)
		}
		field, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("template field %q not found", name)
		}
		font, ok := embedded[spec.FontKey]
		if !ok {
			return nil, fmt.Errorf("font %q required by field %q is not embedded", spec.FontKey, name)
		}

		field.V = core.MakeString(value)
		fallbacks[field.PartialName()] = &annotator.AppearanceFont{
			Name: spec.FontKey,
			Font: font,
			Size: spec.Size,
		}
	}

	appearance := annotator.FieldAppearance{OnlyIfMissing: false, RegenerateTextFields: true}
	appearance.SetStyle(annotator.AppearanceStyle{
		AutoFontSizeFraction: 0.70,
		Fonts: &annotator.AppearanceFontStyle{
			Fallback: &annotator.AppearanceFont{
				Name: FontRegular,
				Font: embedded[FontRegular],
				Size: 12,
			},
			FieldFallbacks: fallbacks,
			ForceReplace:   true,
		},
	})

	// flatten is terminal: interactive fields become page content
	if err := reader.FlattenFields(true, appearance); err != nil {
		return nil, fmt.Errorf("failed to flatten form: %w", err)
	}

	writer, err := reader.ToWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare output document: %w", err)
	}

	var buf bytes.Buffer
	if err := writer.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

// embedFonts parses every cached font into an embeddable PDF font object
func embedFonts(cache *FontCache) (map[string]*model.PdfFont, error) {
	embedded := make(map[string]*model.PdfFont, len(RequiredFonts))
	for _, key := range RequiredFonts {
		data, ok := cache.Get(key)
		if !ok {
			return nil, fmt.Errorf("font %q missing from cache", key)
		}
		font, err := model.NewPdfFontFromTTF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to load font %q: %w", key, err)
		}
		embedded[key] = font
	}
	return embedded, nil
}
