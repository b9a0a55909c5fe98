package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyccsite/internal/gallery"
)

func albumServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("prefix") == "empty" {
			_ = json.NewEncoder(w).Encode(gallery.PhotoList{Images: []gallery.Photo{}})
			return
		}
		images := make([]gallery.Photo, n)
		for i := range images {
			key := fmt.Sprintf("album/%d.jpg", i+1)
			images[i] = gallery.Photo{UUID: key, FilePath: key}
			if i != 30 {
				u := "https://cdn/" + key
				images[i].URL = &u
			}
		}
		_ = json.NewEncoder(w).Encode(gallery.PhotoList{Images: images, Count: n})
	}))
}

func TestRun_PrintsPage(t *testing.T) {
	srv := albumServer(t, 64)
	defer srv.Close()

	var out bytes.Buffer
	err := run(context.Background(), []string{"-api", srv.URL, "-prefix", "album", "-page", "2"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "album: page 2 of 3 (64 photos)", lines[0])
	// Page two holds 25..48; 31.jpg has no URL and is skipped.
	assert.Len(t, lines[1:], 23)
	assert.True(t, strings.HasPrefix(lines[1], "album/25.jpg\t"))
	assert.NotContains(t, out.String(), "album/31.jpg")
}

func TestRun_LastPageClamps(t *testing.T) {
	srv := albumServer(t, 64)
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-api", srv.URL, "-prefix", "album", "-page", "9"}, strings.NewReader(""), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "album: page 3 of 3 (64 photos)", lines[0])
	assert.Len(t, lines[1:], 16)
}

func TestRun_Viewer(t *testing.T) {
	srv := albumServer(t, 64)
	defer srv.Close()

	var out bytes.Buffer
	keys := strings.NewReader("n\nright\nbogus\np\nq\nn\n")
	args := []string{"-api", srv.URL, "-prefix", "album", "-page", "3", "-open", "15"}
	require.NoError(t, run(context.Background(), args, keys, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	viewed := lines[17:]
	assert.Equal(t, []string{
		"[15/16] album/63.jpg\thttps://cdn/album/63.jpg",
		"[16/16] album/64.jpg\thttps://cdn/album/64.jpg",
		"[16/16] album/64.jpg\thttps://cdn/album/64.jpg",
		"[15/16] album/63.jpg\thttps://cdn/album/63.jpg",
	}, viewed)
}

func TestRun_Empty(t *testing.T) {
	srv := albumServer(t, 0)
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-api", srv.URL, "-prefix", "empty"}, strings.NewReader(""), &out))
	assert.Equal(t, "no photos found in empty\n", out.String())
}

func TestRun_RequiresPrefix(t *testing.T) {
	err := run(context.Background(), []string{"-api", "http://127.0.0.1:1"}, strings.NewReader(""), &bytes.Buffer{})
	assert.EqualError(t, err, "-prefix is required")
}

func TestParseOptions_Env(t *testing.T) {
	t.Setenv("GALLERY_API_URL", "https://api.example.org")
	t.Setenv("GALLERY_PAGE_SIZE", "16")

	opts, err := parseOptions([]string{"-prefix", "a"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", opts.APIURL)
	assert.Equal(t, 16, opts.PageSize)
	assert.Equal(t, 1, opts.Page)
	assert.Zero(t, opts.Open)
}
