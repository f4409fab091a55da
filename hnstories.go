// Package hnstories fetches Hacker News story listings, enriches every story
// ID with its item details concurrently, and can rank the newest stories by
// fuzzy title similarity.
//
// The package-level functions use a shared default client. Use
// hackernews.NewClient directly for a custom base URL, timeout or logger.
package hnstories

import (
	"context"
	"sync"

	"github.com/pevans/hnstories/hackernews"
)

// Story is a shaped Hacker News story.
type Story = hackernews.Story

var (
	defaultMu     sync.Mutex
	defaultClient *hackernews.Client
)

// DefaultClient returns the client used by the package-level functions,
// creating it with hackernews.DefaultClientConfig on first use.
func DefaultClient() *hackernews.Client {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient == nil {
		defaultClient = hackernews.NewClient(nil, nil)
	}
	return defaultClient
}

// SetDefaultClient replaces the client used by the package-level functions.
// Passing nil restores the default on next use.
func SetDefaultClient(client *hackernews.Client) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultClient = client
}

// GetTopStories returns up to count of the current top stories.
func GetTopStories(ctx context.Context, count int) ([]Story, error) {
	return DefaultClient().GetTopStories(ctx, count)
}

// GetNewStories returns up to count of the newest stories.
func GetNewStories(ctx context.Context, count int) ([]Story, error) {
	return DefaultClient().GetNewStories(ctx, count)
}

// SearchNewStoriesByTitle fetches the 100 newest stories and returns the count
// whose titles best match query.
func SearchNewStoriesByTitle(ctx context.Context, query string, count int) ([]Story, error) {
	return DefaultClient().SearchNewStoriesByTitle(ctx, query, count)
}
