// Package models holds the DTOs mirrored from the review server. The client
// owns no authoritative state: every value here is a transient cached copy
// of a server-side record, replaced wholesale from server responses.
package models

// Book is a server-owned book record.
//
// CoverImage may be a path relative to the server origin; resolve it with
// the API client before displaying.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
	ISBNNumber  string `json:"isbn_number"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// BookFields is the full editable field set of a book. Updates always send
// every field, not a partial patch.
type BookFields struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBNNumber  string `json:"isbn_number"`
	Description string `json:"description"`
}

// Submission is an in-progress book submission: the editable fields plus a
// local path of the picked cover image. It exists only while the form is
// active and is discarded on successful submit.
type Submission struct {
	Title       string
	Author      string
	ISBNNumber  string
	Description string
	CoverPath   string
}
