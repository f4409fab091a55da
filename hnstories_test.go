package hnstories

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pevans/hnstories/hackernews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper: serve a small fixed API and install a default client for it
func setupDefaultClient(t *testing.T) {
	titles := map[string]string{
		"1": "Rust compiler news",
		"2": "Go release",
		"3": "Rust 2.0 ships",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /topstories.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[1,2,3]")
	})
	mux.HandleFunc("GET /newstories.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[3,2,1]")
	})
	mux.HandleFunc("GET /item/{file}", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSuffix(r.PathValue("file"), ".json")
		fmt.Fprintf(w, `{"id": %s, "title": %q, "by": "someone", "score": 1, "time": 1700000000}`, id, titles[id])
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	SetDefaultClient(hackernews.NewClient(&hackernews.ClientConfig{BaseURL: server.URL}, nil))
	t.Cleanup(func() { SetDefaultClient(nil) })
}

// TestGetTopStories verifies the package-level top stories call
func TestGetTopStories(t *testing.T) {
	setupDefaultClient(t)

	stories, err := GetTopStories(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, stories, 2)
	assert.Equal(t, "Rust compiler news", stories[0].TitleOrEmpty())
	assert.Equal(t, "https://news.ycombinator.com/item?id=2", stories[1].CommentsURL)
}

// TestGetNewStories verifies the package-level new stories call
func TestGetNewStories(t *testing.T) {
	setupDefaultClient(t)

	stories, err := GetNewStories(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, stories, 3)
	assert.Equal(t, "Rust 2.0 ships", stories[0].TitleOrEmpty())
}

// TestSearchNewStoriesByTitle verifies the package-level search call
func TestSearchNewStoriesByTitle(t *testing.T) {
	setupDefaultClient(t)

	stories, err := SearchNewStoriesByTitle(context.Background(), "rust", 2)
	require.NoError(t, err)

	require.Len(t, stories, 2)
	assert.Equal(t, "Rust 2.0 ships", stories[0].TitleOrEmpty())
	assert.Equal(t, "Rust compiler news", stories[1].TitleOrEmpty())
}

// TestDefaultClient_Lazy verifies a default client is created on demand
func TestDefaultClient_Lazy(t *testing.T) {
	SetDefaultClient(nil)
	t.Cleanup(func() { SetDefaultClient(nil) })

	first := DefaultClient()
	require.NotNil(t, first)
	assert.Same(t, first, DefaultClient())
}
