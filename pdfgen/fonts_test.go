package pdfgen

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFontCacheRejectsIncompleteSet(t *testing.T) {
	_, err := NewFontCache(map[string][]byte{FontRegular: []byte("ttf bytes")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), FontBold)

	_, err = NewFontCache(map[string][]byte{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), FontRegular)
	assert.Contains(t, err.Error(), FontBold)
}

func TestNewFontCacheComplete(t *testing.T) {
	cache, err := NewFontCache(map[string][]byte{
		FontRegular: []byte("regular"),
		FontBold:    []byte("bold"),
	})
	require.NoError(t, err)

	b, ok := cache.Get(FontBold)
	assert.True(t, ok)
	assert.Equal(t, []byte("bold"), b)

	_, ok = cache.Get("no-such-font")
	assert.False(t, ok)
}

func TestLoadFontCacheFailsOnMissingAssetRecord(t *testing.T) {
	load := func(ctx context.Context, key string) ([]byte, error) {
		return []byte("bytes"), nil
	}

	_, err := LoadFontCache(context.Background(), load, map[string]string{
		FontRegular: "fonts/regular.ttf",
		// bold has no asset record
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), FontBold)
}

func TestLoadFontCacheFailsOnFetchError(t *testing.T) {
	load := func(ctx context.Context, key string) ([]byte, error) {
		if key == "fonts/bold.ttf" {
			return nil, fmt.Errorf("object not found")
		}
		return []byte("bytes"), nil
	}

	_, err := LoadFontCache(context.Background(), load, map[string]string{
		FontRegular: "fonts/regular.ttf",
		FontBold:    "fonts/bold.ttf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "object not found")
}

func TestLoadFontCacheFailsOnEmptyObject(t *testing.T) {
	load := func(ctx context.Context, key string) ([]byte, error) {
		return nil, nil
	}

	_, err := LoadFontCache(context.Background(), load, map[string]string{
		FontRegular: "fonts/regular.ttf",
		FontBold:    "fonts/bold.ttf",
	})
	assert.Error(t, err)
}
