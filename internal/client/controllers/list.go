// Package controllers holds the screen-level state machines of the client:
// list browsing with client-side pagination, debounced search, book detail
// with review CRUD, and the auth/submission forms. Controllers keep
// transient copies of server state and replace them wholesale from server
// responses; they never derive authoritative state locally.
package controllers

import (
	"context"
	"sync"

	"bookreview/internal/client/models"
	"bookreview/internal/logging"
)

// Phase is the lifecycle of a list screen.
type Phase string

const (
	PhaseLoading    Phase = "loading"
	PhaseReady      Phase = "ready"
	PhaseFailed     Phase = "failed"
	PhaseRefreshing Phase = "refreshing"
)

const (
	// InitialVisible books are shown right after a load.
	InitialVisible = 2
	// LoadMoreStep is added to the visible window per "load more".
	LoadMoreStep = 3
)

// BookFetchFunc fetches the full collection backing a list screen. The
// server returns the entire collection on every fetch; pagination is purely
// client-side slicing over the fetched snapshot.
type BookFetchFunc func(ctx context.Context) ([]models.Book, error)

// ListController drives a book list screen: initial load, pull-to-refresh,
// and an incremental visible-count cursor over the fetched snapshot.
type ListController struct {
	mu      sync.Mutex
	fetch   BookFetchFunc
	logger  logging.Logger
	phase   Phase
	books   []models.Book
	visible int
	err     error
}

func NewListController(fetch BookFetchFunc, logger logging.Logger) *ListController {
	return &ListController{
		fetch:   fetch,
		logger:  logger,
		phase:   PhaseLoading,
		visible: InitialVisible,
	}
}

// Load performs the full fetch shown behind the initial loading indicator.
// The fetched snapshot replaces the previous one; the visible window resets
// to the initial size. Called on mount and on every return-to-focus.
func (c *ListController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.phase = PhaseLoading
	c.mu.Unlock()

	books, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.phase = PhaseFailed
		c.err = err
		c.logger.Error(ctx, "book list load failed", "error", err)
		return err
	}
	c.books = books
	c.visible = InitialVisible
	c.phase = PhaseReady
	c.err = nil
	return nil
}

// Refresh re-issues the fetch without entering the loading phase, so the
// screen can show a dedicated refreshing indicator instead of the initial
// spinner. The visible window is kept.
func (c *ListController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.phase = PhaseRefreshing
	c.mu.Unlock()

	books, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.phase = PhaseFailed
		c.err = err
		c.logger.Error(ctx, "book list refresh failed", "error", err)
		return err
	}
	c.books = books
	c.phase = PhaseReady
	c.err = nil
	return nil
}

// LoadMore widens the visible window by LoadMoreStep without a network
// call. It is idempotent at the end of the collection.
func (c *ListController) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.visible >= len(c.books) {
		return
	}
	c.visible += LoadMoreStep
	if c.visible > len(c.books) {
		c.visible = len(c.books)
	}
}

// CanLoadMore reports whether more of the fetched snapshot remains hidden;
// the "load more" control is shown only while this is true.
func (c *ListController) CanLoadMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible < len(c.books)
}

// Visible returns the currently shown slice of the snapshot.
func (c *ListController) Visible() []models.Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.visible
	if n > len(c.books) {
		n = len(c.books)
	}
	out := make([]models.Book, n)
	copy(out, c.books[:n])
	return out
}

// Len returns the size of the full fetched snapshot.
func (c *ListController) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.books)
}

func (c *ListController) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Err returns the error of the last failed fetch, nil when healthy.
func (c *ListController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
