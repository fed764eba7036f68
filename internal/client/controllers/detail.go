package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bookreview/internal/client/api"
	"bookreview/internal/client/models"
	"bookreview/internal/common"
	"bookreview/internal/logging"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DetailController drives a single book screen: the book record, its
// reviews, review create/update/delete, and book update/delete. The book
// and review fetches are independent; a failure in one never blocks
// rendering the other's result.
type DetailController struct {
	mu     sync.Mutex
	client api.Client
	logger logging.Logger

	bookID     int64
	book       *models.Book
	bookErr    error
	reviews    []models.Review
	reviewsErr error
	editing    bool

	// onDeleted is supplied by the originating list so it can refresh
	// after the book is gone.
	onDeleted func()
}

func NewDetailController(client api.Client, bookID int64, logger logging.Logger, onDeleted func()) *DetailController {
	return &DetailController{client: client, bookID: bookID, logger: logger, onDeleted: onDeleted}
}

// validateDraft is the client-side gate in front of every review mutation.
// When it fails, no network call is made.
func validateDraft(draft models.ReviewDraft) error {
	err := validation.Errors{
		"rating": validation.Validate(draft.Rating,
			validation.Required, validation.Min(1), validation.Max(5)),
		"comment": validation.Validate(draft.Comment, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// ValidateBookFields gates book updates and submissions: every field is
// required and non-empty.
func ValidateBookFields(fields models.BookFields) error {
	err := validation.Errors{
		"title":       validation.Validate(fields.Title, validation.Required),
		"author":      validation.Validate(fields.Author, validation.Required),
		"isbn_number": validation.Validate(fields.ISBNNumber, validation.Required),
		"description": validation.Validate(fields.Description, validation.Required),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// Load fetches the book and its reviews as two independent calls. Each
// section keeps its own error; partial data renders. The combined error is
// returned so callers can still match sentinel conditions with errors.Is.
func (c *DetailController) Load(ctx context.Context) error {
	book, bookErr := c.client.GetBook(ctx, c.bookID)
	reviews, reviewsErr := c.client.ListReviews(ctx, c.bookID)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.bookErr = bookErr
	if bookErr == nil {
		c.book = book
	} else {
		c.logger.Error(ctx, "book fetch failed", "book_id", c.bookID, "error", bookErr)
	}

	c.reviewsErr = reviewsErr
	if reviewsErr == nil {
		c.reviews = reviews
	} else {
		c.logger.Error(ctx, "reviews fetch failed", "book_id", c.bookID, "error", reviewsErr)
	}

	return errors.Join(bookErr, reviewsErr)
}

// CreateReview validates the draft, submits it, and prepends the
// server-returned review (with its computed sentiment and relative time)
// into the local list. The displayed review is never constructed from
// client input.
func (c *DetailController) CreateReview(ctx context.Context, draft models.ReviewDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}

	review, err := c.client.CreateReview(ctx, c.bookID, draft)
	if err != nil {
		c.logger.Error(ctx, "review create failed", "book_id", c.bookID, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.reviews = append([]models.Review{*review}, c.reviews...)
	return nil
}

// StartEditReview re-reads the current server copy of the review and
// returns a draft pre-filled from it.
func (c *DetailController) StartEditReview(ctx context.Context, id int64) (models.ReviewDraft, error) {
	review, err := c.client.GetReview(ctx, id)
	if err != nil {
		return models.ReviewDraft{}, err
	}
	return models.ReviewDraft{Rating: int(review.Rating), Comment: review.Comment}, nil
}

// UpdateReview validates the draft, submits the update, and replaces the
// matching local entry by id with the server response.
func (c *DetailController) UpdateReview(ctx context.Context, id int64, draft models.ReviewDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}

	review, err := c.client.UpdateReview(ctx, id, draft)
	if err != nil {
		c.logger.Error(ctx, "review update failed", "review_id", id, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.reviews {
		if c.reviews[i].ID == id {
			c.reviews[i] = *review
			break
		}
	}
	return nil
}

// DeleteReview issues the destructive call only when confirmed. On success
// the entry is removed locally and back reports true: deleting a review
// leaves its detail context, so the screen navigates back exactly once.
func (c *DetailController) DeleteReview(ctx context.Context, id int64, confirmed bool) (back bool, err error) {
	if !confirmed {
		return false, nil
	}

	if err := c.client.DeleteReview(ctx, id); err != nil {
		c.logger.Error(ctx, "review delete failed", "review_id", id, "error", err)
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.reviews[:0]
	for _, r := range c.reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.reviews = kept
	return true, nil
}

// UpdateBook sends the full field set. On success the displayed fields are
// overwritten with the submitted values (no re-fetch) and edit mode ends.
func (c *DetailController) UpdateBook(ctx context.Context, fields models.BookFields) error {
	if err := ValidateBookFields(fields); err != nil {
		return err
	}

	if _, err := c.client.UpdateBook(ctx, c.bookID, fields); err != nil {
		c.logger.Error(ctx, "book update failed", "book_id", c.bookID, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.book != nil {
		c.book.Title = fields.Title
		c.book.Author = fields.Author
		c.book.ISBNNumber = fields.ISBNNumber
		c.book.Description = fields.Description
	}
	c.editing = false
	return nil
}

// DeleteBook issues the destructive call only when confirmed. On success
// the completion callback fires (so the originating list can refresh) and
// deleted reports true: the screen navigates to the top-level list.
func (c *DetailController) DeleteBook(ctx context.Context, confirmed bool) (deleted bool, err error) {
	if !confirmed {
		return false, nil
	}

	if err := c.client.DeleteBook(ctx, c.bookID); err != nil {
		c.logger.Error(ctx, "book delete failed", "book_id", c.bookID, "error", err)
		return false, err
	}

	if c.onDeleted != nil {
		c.onDeleted()
	}
	return true, nil
}

func (c *DetailController) SetEditing(editing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = editing
}

func (c *DetailController) Editing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editing
}

// Book returns the displayed book, nil when its fetch failed or has not
// completed.
func (c *DetailController) Book() *models.Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.book == nil {
		return nil
	}
	b := *c.book
	return &b
}

func (c *DetailController) Reviews() []models.Review {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Review, len(c.reviews))
	copy(out, c.reviews)
	return out
}

// BookErr and ReviewsErr expose the per-section fetch errors for partial
// rendering.
func (c *DetailController) BookErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookErr
}

func (c *DetailController) ReviewsErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reviewsErr
}
