package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"bookreview/internal/client/models"
	"bookreview/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func nBooks(n int) []models.Book {
	books := make([]models.Book, n)
	for i := range books {
		books[i] = models.Book{ID: int64(i + 1), Title: fmt.Sprintf("Book %d", i+1)}
	}
	return books
}

func staticFetch(books []models.Book) BookFetchFunc {
	return func(context.Context) ([]models.Book, error) { return books, nil }
}

func TestListController_LoadShowsInitialWindow(t *testing.T) {
	c := NewListController(staticFetch(nBooks(5)), testLogger())

	assert.Equal(t, PhaseLoading, c.Phase())

	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, PhaseReady, c.Phase())
	assert.Len(t, c.Visible(), InitialVisible)
	assert.True(t, c.CanLoadMore())
}

func TestListController_LoadMoreProgression(t *testing.T) {
	// 5 books, initial visible=2; one load-more (+3) makes 5; a second
	// one is a no-op and the control hides.
	c := NewListController(staticFetch(nBooks(5)), testLogger())
	require.NoError(t, c.Load(context.Background()))

	c.LoadMore()
	assert.Len(t, c.Visible(), 5)
	assert.False(t, c.CanLoadMore())

	c.LoadMore()
	assert.Len(t, c.Visible(), 5)
	assert.False(t, c.CanLoadMore())
}

func TestListController_VisibleCountMonotonicAndBounded(t *testing.T) {
	c := NewListController(staticFetch(nBooks(11)), testLogger())
	require.NoError(t, c.Load(context.Background()))

	prev := len(c.Visible())
	for i := 0; i < 10; i++ {
		c.LoadMore()
		cur := len(c.Visible())
		assert.GreaterOrEqual(t, cur, prev, "visible count must never shrink")
		assert.LessOrEqual(t, cur, c.Len(), "visible count must never exceed the snapshot")
		prev = cur
	}
	assert.Equal(t, 11, prev)
}

func TestListController_LoadReplacesSnapshot(t *testing.T) {
	books := nBooks(5)
	fetch := func(context.Context) ([]models.Book, error) { return books, nil }
	c := NewListController(fetch, testLogger())
	require.NoError(t, c.Load(context.Background()))
	c.LoadMore()
	assert.Len(t, c.Visible(), 5)

	// return-to-focus re-fetch replaces, never merges
	books = nBooks(3)
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 3, c.Len())
	assert.Len(t, c.Visible(), InitialVisible)
}

func TestListController_RefreshKeepsVisibleWindow(t *testing.T) {
	c := NewListController(staticFetch(nBooks(8)), testLogger())
	require.NoError(t, c.Load(context.Background()))
	c.LoadMore()
	require.Len(t, c.Visible(), 5)

	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, PhaseReady, c.Phase())
	assert.Len(t, c.Visible(), 5, "refresh must not reset the visible window")
}

func TestListController_RefreshIsNotLoading(t *testing.T) {
	phases := make(chan Phase, 1)
	var c *ListController
	fetch := func(context.Context) ([]models.Book, error) {
		phases <- c.Phase()
		return nBooks(2), nil
	}
	c = NewListController(fetch, testLogger())

	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, PhaseLoading, <-phases)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, PhaseRefreshing, <-phases, "refresh must not show the full-screen loading state")
}

func TestListController_FetchFailure(t *testing.T) {
	boom := errors.New("boom")
	fetch := func(context.Context) ([]models.Book, error) { return nil, boom }
	c := NewListController(fetch, testLogger())

	err := c.Load(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, PhaseFailed, c.Phase())
	assert.ErrorIs(t, c.Err(), boom)
	assert.Empty(t, c.Visible())
}

func TestListController_EmptyCollection(t *testing.T) {
	c := NewListController(staticFetch(nil), testLogger())
	require.NoError(t, c.Load(context.Background()))

	assert.Empty(t, c.Visible())
	assert.False(t, c.CanLoadMore())
}
