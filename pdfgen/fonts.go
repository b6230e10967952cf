package pdfgen

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Font keys the certificate template renders with
const (
	FontRegular = "cert-regular"
	FontBold    = "cert-bold"
)

// RequiredFonts must all be present before any generation is attempted
var RequiredFonts = []string{FontRegular, FontBold}

// FontCache holds the raw bytes of every embedded font. It is built once,
// verified complete, and passed by value wherever generation happens; there
// is no global cache to observe half-loaded.
type FontCache struct {
	fonts map[string][]byte
}

// FontLoader fetches one named font object from the font bucket
type FontLoader func(ctx context.Context, objectKey string) ([]byte, error)

// NewFontCache builds a cache from already-fetched bytes, rejecting any
// incomplete set
func NewFontCache(fonts map[string][]byte) (*FontCache, error) {
	if missing := missingFonts(fonts); len(missing) > 0 {
		return nil, fmt.Errorf("font cache incomplete: missing %s", strings.Join(missing, ", "))
	}
	copied := make(map[string][]byte, len(fonts))
	for k, v := range fonts {
		copied[k] = v
	}
	return &FontCache{fonts: copied}, nil
}

// LoadFontCache downloads every required font. objectKeys maps font key to
// the bucket object key (from the font_assets table). Any missing mapping,
// failed download, or empty object is a hard failure: a certificate rendered
// with a substitute font is worse than no certificate.
func LoadFontCache(ctx context.Context, load FontLoader, objectKeys map[string]string) (*FontCache, error) {
	fonts := make(map[string][]byte, len(RequiredFonts))
	for _, key := range RequiredFonts {
		objectKey, ok := objectKeys[key]
		if !ok {
			return nil, fmt.Errorf("font %q has no asset record", key)
		}
		data, err := load(ctx, objectKey)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch font %q (%s): %w", key, objectKey, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("font %q (%s) is empty", key, objectKey)
		}
		fonts[key] = data
	}
	return NewFontCache(fonts)
}

// Get returns the bytes for a font key
func (c *FontCache) Get(key string) ([]byte, bool) {
	b, ok := c.fonts[key]
	return b, ok
}

func missingFonts(fonts map[string][]byte) []string {
	var missing []string
	for _, key := range RequiredFonts {
		if len(fonts[key]) == 0 {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
