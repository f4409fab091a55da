package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the public Hacker News Firebase API.
const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// SearchCandidates is how many of the newest stories are ranked by
// SearchNewStoriesByTitle, regardless of how many are returned.
const SearchCandidates = 100

// Category selects a story listing.
type Category string

const (
	CategoryTop Category = "top"
	CategoryNew Category = "new"
)

// endpoint returns the listing path segment for the category.
func (c Category) endpoint() (string, error) {
	switch c {
	case CategoryTop:
		return "topstories", nil
	case CategoryNew:
		return "newstories", nil
	default:
		return "", errors.Wrapf(ErrUnknownCategory, "%q", string(c))
	}
}

// ClientConfig holds configuration for the API client.
type ClientConfig struct {
	// Root of the API, without a trailing slash
	BaseURL string
	// Timeout per request; zero means no timeout
	Timeout time.Duration
	// Maximum number of item requests in flight; zero means unbounded
	Concurrency int
	// User-Agent header sent with every request; empty leaves Go's default
	UserAgent string
}

// DefaultClientConfig returns a config for the public API with no timeout
// and no concurrency cap.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:   DefaultBaseURL,
		UserAgent: "hnstories/1.0",
	}
}

// Client fetches and shapes stories. It holds no state between calls apart
// from the HTTP connection pool, so one client can serve concurrent callers.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	logger     logrus.FieldLogger
}

// NewClient creates a client. A nil config uses DefaultClientConfig and a nil
// logger uses the logrus standard logger.
func NewClient(config *ClientConfig, logger logrus.FieldLogger) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}
	cfg := *config
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		config: &cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GetTopStories returns up to count stories from the top listing.
func (c *Client) GetTopStories(ctx context.Context, count int) ([]Story, error) {
	return c.GetStories(ctx, CategoryTop, count)
}

// GetNewStories returns up to count stories from the newest listing.
func (c *Client) GetNewStories(ctx context.Context, count int) ([]Story, error) {
	return c.GetStories(ctx, CategoryNew, count)
}

// SearchNewStoriesByTitle ranks the newest SearchCandidates stories by fuzzy
// title similarity to query and returns the best count of them.
func (c *Client) SearchNewStoriesByTitle(ctx context.Context, query string, count int) ([]Story, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}

	candidates, err := c.GetStories(ctx, CategoryNew, SearchCandidates)
	if err != nil {
		return nil, err
	}

	return RankByTitle(query, candidates, count)
}

// GetStories lists the first count IDs of a category, fetches every item
// concurrently and shapes them. Either all stories are returned, in listing
// order, or a single error.
func (c *Client) GetStories(ctx context.Context, category Category, count int) ([]Story, error) {
	log := c.logger.WithFields(logrus.Fields{
		"fetch_id": uuid.NewString(),
		"category": string(category),
	})

	ids, err := c.listStoryIDs(ctx, log, category, count)
	if err != nil {
		return nil, err
	}

	items, err := c.fetchItems(ctx, log, ids)
	if err != nil {
		return nil, err
	}

	return ShapeStories(items), nil
}

// ListStoryIDs returns up to count story IDs of a category in the order the
// API ranks them.
func (c *Client) ListStoryIDs(ctx context.Context, category Category, count int) ([]int64, error) {
	return c.listStoryIDs(ctx, c.logger, category, count)
}

func (c *Client) listStoryIDs(ctx context.Context, log logrus.FieldLogger, category Category, count int) ([]int64, error) {
	if count < 0 {
		return nil, ErrInvalidCount
	}

	endpoint, err := category.endpoint()
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s.json", c.config.BaseURL, endpoint), &ids); err != nil {
		return nil, err
	}

	if count < len(ids) {
		ids = ids[:count]
	}

	log.WithField("count", len(ids)).Debug("listed story ids")
	return ids, nil
}

// FetchItems fetches every item concurrently. The result is aligned by index
// with ids. If any request fails the whole batch fails; requests already
// started are still waited for.
func (c *Client) FetchItems(ctx context.Context, ids []int64) ([]Item, error) {
	return c.fetchItems(ctx, c.logger, ids)
}

func (c *Client) fetchItems(ctx context.Context, log logrus.FieldLogger, ids []int64) ([]Item, error) {
	items := make([]Item, len(ids))

	var g errgroup.Group
	if c.config.Concurrency > 0 {
		g.SetLimit(c.config.Concurrency)
	}

	for i, id := range ids {
		g.Go(func() error {
			item, err := c.GetItem(ctx, id)
			if err != nil {
				return err
			}
			items[i] = item // each goroutine owns slot i
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Debug("item batch failed")
		return nil, err
	}

	log.WithField("count", len(items)).Debug("fetched items")
	return items, nil
}

// GetItem fetches a single item. A null body (deleted or unknown item)
// yields an Item with every field nil.
func (c *Client) GetItem(ctx context.Context, id int64) (Item, error) {
	var item Item
	url := c.config.BaseURL + "/item/" + strconv.FormatInt(id, 10) + ".json"
	if err := c.getJSON(ctx, url, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// getJSON performs a GET and decodes the JSON body into v. The response body
// is closed on every path.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "new request %s", url)
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "get %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrapf(err, "decode %s", url)
	}

	return nil
}
