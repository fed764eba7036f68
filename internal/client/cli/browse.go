package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"bookreview/internal/client/controllers"
	"bookreview/internal/client/models"
)

func (a *App) printBooks(books []models.Book) {
	for _, b := range books {
		printlnFn(fmt.Sprintf("[%d] %s by %s (ISBN %s)", b.ID, b.Title, b.Author, b.ISBNNumber))
	}
}

// Browse loads the catalogue and shows the initial visible window.
func (a *App) Browse(ctx context.Context) error {
	if err := a.catalogue.Load(ctx); err != nil {
		a.guard(ctx, err)
		return err
	}

	a.printBooks(a.catalogue.Visible())
	if a.catalogue.CanLoadMore() {
		printlnFn("(type 'more' to load more)")
	}
	return nil
}

// More widens the visible window over the already-fetched catalogue. No
// network call is made.
func (a *App) More(ctx context.Context) error {
	if !a.catalogue.CanLoadMore() {
		printlnFn("Nothing more to show.")
		return nil
	}
	a.catalogue.LoadMore()
	a.printBooks(a.catalogue.Visible())
	if a.catalogue.CanLoadMore() {
		printlnFn("(type 'more' to load more)")
	}
	return nil
}

// RefreshList re-fetches the catalogue, keeping the visible window.
func (a *App) RefreshList(ctx context.Context) error {
	printlnFn("Refreshing...")
	if err := a.catalogue.Refresh(ctx); err != nil {
		a.guard(ctx, err)
		return err
	}
	a.printBooks(a.catalogue.Visible())
	return nil
}

// Mine shows the current user's submissions.
func (a *App) Mine(ctx context.Context) error {
	if err := a.mine.Load(ctx); err != nil {
		a.guard(ctx, err)
		return err
	}

	if a.mine.Len() == 0 {
		printlnFn("You have no submissions yet.")
		return nil
	}
	// submissions are few; show them all at once
	for a.mine.CanLoadMore() {
		a.mine.LoadMore()
	}
	a.printBooks(a.mine.Visible())
	return nil
}

// Search prompts for a query and runs it through the debounced search
// controller, waiting for the settled result set.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search for title or author (empty to clear)", os.Stdout)
	if err != nil {
		return err
	}

	a.search.SetQuery(ctx, query)
	a.waitForSearch()

	if err := a.search.Err(); err != nil {
		a.guard(ctx, err)
		return err
	}

	results := a.search.Results()
	if len(results) == 0 {
		printlnFn("No matches.")
		return nil
	}
	a.printBooks(results)
	return nil
}

// waitForSearch blocks until the debounced fetch settles. The REPL is
// line-oriented, so there is nothing else to do meanwhile.
func (a *App) waitForSearch() {
	deadline := time.Now().Add(a.config.RequestTimeout + controllers.DefaultDebounce)
	for a.search.Searching() && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
}
