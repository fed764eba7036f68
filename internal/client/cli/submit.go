package cli

import (
	"context"
	"fmt"
	"os"

	"bookreview/internal/client/models"
)

// AddBook collects the submission fields and uploads them, cover image
// included. On success the newly created book is announced and the
// catalogue refreshes so the list screen shows it.
func (a *App) AddBook(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		return err
	}
	isbn, err := getSimpleText(a.reader, "ISBN", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	coverPath, err := getSimpleText(a.reader, "Path to cover image", os.Stdout)
	if err != nil {
		return err
	}

	a.form.SetFields(models.Submission{
		Title:       title,
		Author:      author,
		ISBNNumber:  isbn,
		Description: description,
		CoverPath:   coverPath,
	})

	book, err := a.form.Submit(ctx)
	if err != nil {
		a.guard(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Book submitted: %s (id %d)", book.Title, book.ID))
	if err := a.catalogue.Refresh(ctx); err != nil {
		a.guard(ctx, err)
		return nil
	}
	a.printBooks(a.catalogue.Visible())
	return nil
}
