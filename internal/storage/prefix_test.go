package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixedKeys(t *testing.T) {
	backends := NewBackends(NewMemory("https://cdn.example.test/assets"))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain", "css/app.css", "static/css/app.css"},
		{"leading slash stripped", "/css/app.css", "static/css/app.css"},
		{"nested", "img/logos/dark.svg", "static/img/logos/dark.svg"},
		{"empty path maps to bare prefix", "", "static"},
		{"all slashes map to bare prefix", "///", "static"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backends.Static.Key(tt.path))
		})
	}
}

func TestStaticAndMediaKeysDiffer(t *testing.T) {
	backends := NewBackends(NewMemory("https://cdn.example.test/assets"))

	const path = "report.pdf"
	staticKey := backends.Static.Key(path)
	mediaKey := backends.Media.Key(path)

	assert.True(t, strings.HasPrefix(staticKey, "static/"))
	assert.True(t, strings.HasPrefix(mediaKey, "media/"))
	assert.NotEqual(t, staticKey, mediaKey)
}

func TestPrefixedSaveRoutesUnderPrefix(t *testing.T) {
	mem := NewMemory("https://cdn.example.test/assets")
	backends := NewBackends(mem)
	ctx := context.Background()

	content := "body { margin: 0 }"
	err := backends.Static.Save(ctx, "css/app.css", strings.NewReader(content), int64(len(content)), "text/css")
	require.NoError(t, err)

	err = backends.Media.Save(ctx, "avatar.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)

	keys := mem.Keys()
	assert.ElementsMatch(t, []string{"static/css/app.css", "media/avatar.png"}, keys)
}

func TestPrefixedRoundTrip(t *testing.T) {
	backends := NewBackends(NewMemory("https://cdn.example.test/assets"))
	ctx := context.Background()

	content := "uploaded bytes"
	err := backends.Media.Save(ctx, "docs/note.txt", strings.NewReader(content), int64(len(content)), "text/plain")
	require.NoError(t, err)

	rc, err := backends.Media.Open(ctx, "docs/note.txt")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestPrefixedDelete(t *testing.T) {
	backends := NewBackends(NewMemory("https://cdn.example.test/assets"))
	ctx := context.Background()

	require.NoError(t, backends.Media.Save(ctx, "tmp.bin", strings.NewReader("x"), 1, "application/octet-stream"))
	require.NoError(t, backends.Media.Delete(ctx, "tmp.bin"))

	_, err := backends.Media.Open(ctx, "tmp.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrefixedURL(t *testing.T) {
	backends := NewBackends(NewMemory("https://cdn.example.test/assets"))

	assert.Equal(t,
		"https://cdn.example.test/assets/static/css/app.css",
		backends.Static.URL("css/app.css"))
	assert.Equal(t,
		"https://cdn.example.test/assets/media/avatar.png",
		backends.Media.URL("avatar.png"))
}

func TestPublicURLPattern(t *testing.T) {
	got := publicURL("https://acc.r2.cloudflarestorage.com", "assets", "static/css/app.css")
	assert.Equal(t, "https://acc.r2.cloudflarestorage.com/assets/static/css/app.css", got)
}
