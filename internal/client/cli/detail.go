package cli

import (
	"context"
	"fmt"
	"os"

	"bookreview/internal/client/controllers"
	"bookreview/internal/client/models"
)

func sentimentMarker(s string) string {
	switch s {
	case models.SentimentPositive:
		return "(+)"
	case models.SentimentNegative:
		return "(-)"
	case models.SentimentNeutral:
		return "(=)"
	default:
		return ""
	}
}

func (a *App) printDetail() {
	if a.detail == nil {
		return
	}
	if book := a.detail.Book(); book != nil {
		printlnFn(fmt.Sprintf("%s by %s", book.Title, book.Author))
		printlnFn("ISBN:", book.ISBNNumber)
		printlnFn(book.Description)
		if book.CoverImage != "" {
			printlnFn("Cover:", a.client.ResolveImageURL(book.CoverImage))
		}
	} else if err := a.detail.BookErr(); err != nil {
		printlnFn("Could not load the book:", err.Error())
	}

	if err := a.detail.ReviewsErr(); err != nil {
		printlnFn("Could not load reviews:", err.Error())
		return
	}

	reviews := a.detail.Reviews()
	if len(reviews) == 0 {
		printlnFn("No reviews yet.")
		return
	}
	printlnFn("Reviews:")
	for _, r := range reviews {
		printlnFn(fmt.Sprintf("  [%d] %d/5 %s @%s, %s: %s",
			r.ID, int(r.Rating), sentimentMarker(r.Sentiment), r.User.Username, r.RelativeTime, r.Comment))
	}
}

// Show prompts for a book id, opens its detail screen and renders the book
// together with its reviews. Either section may fail independently; the
// other still renders.
func (a *App) Show(ctx context.Context) error {
	id, err := getInt(a.reader, "Enter book id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	a.detailBookID = id
	a.detail = controllers.NewDetailController(a.client, id, a.logger, func() {
		// the originating list refreshes once the book is gone
		_ = a.catalogue.Refresh(ctx)
	})

	if err := a.detail.Load(ctx); err != nil {
		a.guard(ctx, err)
		// the gate may have torn the screen down (stale token)
		if a.detail == nil {
			return err
		}
	}
	a.printDetail()
	return nil
}

// requireDetail ensures a book is open before review/book commands run.
func (a *App) requireDetail() bool {
	if a.detail == nil {
		printlnFn("Open a book first with 'show'.")
		return false
	}
	return true
}

func (a *App) promptDraft() (models.ReviewDraft, error) {
	rating, err := getInt(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return models.ReviewDraft{}, err
	}
	comment, err := getSimpleText(a.reader, "Comment", os.Stdout)
	if err != nil {
		return models.ReviewDraft{}, err
	}
	return models.ReviewDraft{Rating: int(rating), Comment: comment}, nil
}

// AddReview collects a draft and submits it for the open book. The list
// shown afterwards starts with the server's copy of the new review.
func (a *App) AddReview(ctx context.Context) error {
	if !a.requireDetail() {
		return nil
	}

	draft, err := a.promptDraft()
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.detail.CreateReview(ctx, draft); err != nil {
		a.guard(ctx, err)
		return err
	}

	printlnFn("Review added.")
	a.printDetail()
	return nil
}

// EditReview pre-fills the draft from the server copy, collects changes
// and submits the update.
func (a *App) EditReview(ctx context.Context) error {
	if !a.requireDetail() {
		return nil
	}

	id, err := getInt(a.reader, "Enter review id to edit", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	current, err := a.detail.StartEditReview(ctx, id)
	if err != nil {
		a.guard(ctx, err)
		return err
	}
	printlnFn(fmt.Sprintf("Editing review %d (was %d/5: %s)", id, current.Rating, current.Comment))

	draft, err := a.promptDraft()
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.detail.UpdateReview(ctx, id, draft); err != nil {
		a.guard(ctx, err)
		return err
	}

	printlnFn("Review updated.")
	a.printDetail()
	return nil
}

// DeleteReview asks for confirmation before the destructive call. On
// success the detail context is left (one navigation back).
func (a *App) DeleteReview(ctx context.Context) error {
	if !a.requireDetail() {
		return nil
	}

	id, err := getInt(a.reader, "Enter review id to delete", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	confirmed, err := getConfirmation(a.reader, "Delete this review?", os.Stdout)
	if err != nil {
		return err
	}

	back, err := a.detail.DeleteReview(ctx, id, confirmed)
	if err != nil {
		a.guard(ctx, err)
		return err
	}
	if !back {
		printlnFn("Kept the review.")
		return nil
	}

	printlnFn("Review deleted.")
	// leaving the review context: back to the book list
	a.detail = nil
	return nil
}

// EditBook collects the full field set for the open book and submits the
// update. Displayed fields take the submitted values.
func (a *App) EditBook(ctx context.Context) error {
	if !a.requireDetail() {
		return nil
	}
	book := a.detail.Book()
	if book == nil {
		printlnFn("The book did not load; nothing to edit.")
		return nil
	}

	a.detail.SetEditing(true)
	defer a.detail.SetEditing(false)

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", book.Title), os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, fmt.Sprintf("Author [%s]", book.Author), os.Stdout)
	if err != nil {
		return err
	}
	isbn, err := getSimpleText(a.reader, fmt.Sprintf("ISBN [%s]", book.ISBNNumber), os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	// blank answers keep the current values; the update still sends the
	// full field set
	fields := models.BookFields{
		Title:       orDefault(title, book.Title),
		Author:      orDefault(author, book.Author),
		ISBNNumber:  orDefault(isbn, book.ISBNNumber),
		Description: orDefault(description, book.Description),
	}

	if err := a.detail.UpdateBook(ctx, fields); err != nil {
		a.guard(ctx, err)
		return err
	}

	printlnFn("Book updated.")
	a.printDetail()
	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// DeleteBook asks for confirmation before the destructive call. On
// success the originating list refreshes and the screen returns to the
// top-level list.
func (a *App) DeleteBook(ctx context.Context) error {
	if !a.requireDetail() {
		return nil
	}

	confirmed, err := getConfirmation(a.reader, "Delete this book?", os.Stdout)
	if err != nil {
		return err
	}

	deleted, err := a.detail.DeleteBook(ctx, confirmed)
	if err != nil {
		a.guard(ctx, err)
		return err
	}
	if !deleted {
		printlnFn("Kept the book.")
		return nil
	}

	printlnFn("Book deleted.")
	a.detail = nil
	a.printBooks(a.catalogue.Visible())
	return nil
}
