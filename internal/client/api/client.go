// Package api talks to the remote review server. It owns request building,
// bearer-token attachment, and the mapping of transport/HTTP failures into
// the sentinel taxonomy in internal/common.
package api

import (
	"context"

	"bookreview/internal/client/models"
)

// Client is one function per (resource, verb) pair of the review API.
//
// Every authenticated method reads the token from the session store first;
// when no token is present the method returns common.ErrUnauthenticated
// without issuing a request. No method retries automatically: each failure
// is surfaced to the calling controller, which decides the messaging.
type Client interface {
	// SignIn exchanges credentials for a bearer token. It does not persist
	// the token; that is the caller's decision.
	SignIn(ctx context.Context, username, password string) (string, error)
	// SignUp creates an account. A successful sign-up does not authenticate.
	SignUp(ctx context.Context, username, email, password string) error

	// ListBooks fetches the full catalogue; query narrows it server-side.
	ListBooks(ctx context.Context, query string) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	// ListMyBooks fetches the current user's submissions.
	ListMyBooks(ctx context.Context) ([]models.Book, error)
	// CreateBook submits a new book as multipart form data (text fields
	// plus the cover image binary).
	CreateBook(ctx context.Context, sub models.Submission) (*models.Book, error)
	// UpdateBook sends the full field set as JSON, never a partial patch.
	UpdateBook(ctx context.Context, id int64, fields models.BookFields) (*models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	ListReviews(ctx context.Context, bookID int64) ([]models.Review, error)
	GetReview(ctx context.Context, id int64) (*models.Review, error)
	CreateReview(ctx context.Context, bookID int64, draft models.ReviewDraft) (*models.Review, error)
	UpdateReview(ctx context.Context, id int64, draft models.ReviewDraft) (*models.Review, error)
	DeleteReview(ctx context.Context, id int64) error

	// ResolveImageURL turns a server-relative image reference into an
	// absolute URL against the server origin.
	ResolveImageURL(ref string) string
}
