package controllers

import (
	"context"
	"strings"
	"sync"
	"time"

	"bookreview/internal/client/models"
	"bookreview/internal/logging"

	"github.com/google/uuid"
)

// DefaultDebounce is the quiet period required after the last keystroke
// before a search request is issued.
const DefaultDebounce = 300 * time.Millisecond

// SearchFetchFunc queries the list endpoint with a query parameter.
type SearchFetchFunc func(ctx context.Context, query string) ([]models.Book, error)

// SearchController debounces keystrokes into queries against the list
// endpoint and applies last-fetch-wins: every scheduled fetch carries a
// tag, and only the fetch whose tag is still current may commit results.
// Stale responses are discarded, never merged.
type SearchController struct {
	mu       sync.Mutex
	fetch    SearchFetchFunc
	logger   logging.Logger
	debounce time.Duration

	timer     *time.Timer
	tag       uuid.UUID
	query     string
	results   []models.Book
	searching bool
	err       error
}

func NewSearchController(fetch SearchFetchFunc, logger logging.Logger) *SearchController {
	return &SearchController{fetch: fetch, logger: logger, debounce: DefaultDebounce}
}

// SetDebounce overrides the quiet period; intended for tests.
func (c *SearchController) SetDebounce(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debounce = d
}

// SetQuery registers a keystroke. An empty or whitespace-only query clears
// the results locally without any network call. A non-empty query schedules
// a fetch after the quiet period; each keystroke restarts the timer and
// invalidates the tag of any pending or in-flight fetch.
func (c *SearchController) SetQuery(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.query = query
	c.tag = uuid.New()

	if query == "" {
		c.results = nil
		c.searching = false
		c.err = nil
		return
	}

	c.searching = true
	tag := c.tag
	c.timer = time.AfterFunc(c.debounce, func() {
		c.run(ctx, query, tag)
	})
}

// run executes the scheduled fetch. The tag is re-checked before issuing
// the request and again before committing the response.
func (c *SearchController) run(ctx context.Context, query string, tag uuid.UUID) {
	c.mu.Lock()
	if tag != c.tag {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	results, err := c.fetch(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if tag != c.tag {
		// a newer query superseded this fetch while it was in flight
		return
	}
	c.searching = false
	if err != nil {
		c.err = err
		c.results = nil
		c.logger.Error(ctx, "search failed", "query", query, "error", err)
		return
	}
	c.err = nil
	c.results = results
}

// Results returns the committed result set for the latest query.
func (c *SearchController) Results() []models.Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Book, len(c.results))
	copy(out, c.results)
	return out
}

// Searching reports whether a fetch is pending or in flight.
func (c *SearchController) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searching
}

func (c *SearchController) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

func (c *SearchController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
