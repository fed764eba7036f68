package controllers

import (
	"context"
	"sync"

	"bookreview/internal/client/models"
)

// fakeClient implements api.Client for controller unit tests. Results and
// errors are configured per method; calls and last arguments are recorded.
type fakeClient struct {
	mu sync.Mutex

	SignInToken string
	SignInErr   error
	SignUpErr   error

	ListBooksRet []models.Book
	ListBooksErr error
	ListBooksFn  func(ctx context.Context, query string) ([]models.Book, error)

	GetBookRet *models.Book
	GetBookErr error

	MyBooksRet []models.Book
	MyBooksErr error

	CreateBookRet *models.Book
	CreateBookErr error

	UpdateBookRet *models.Book
	UpdateBookErr error

	DeleteBookErr error

	ListReviewsRet []models.Review
	ListReviewsErr error

	GetReviewRet *models.Review
	GetReviewErr error

	CreateReviewRet *models.Review
	CreateReviewErr error

	UpdateReviewRet *models.Review
	UpdateReviewErr error

	DeleteReviewErr error

	Calls map[string]int

	LastQuery        string
	LastSignInUser   string
	LastSignUpEmail  string
	LastSubmission   models.Submission
	LastBookFields   models.BookFields
	LastReviewDraft  models.ReviewDraft
	LastDeletedBook  int64
	LastDeletedRev   int64
	LastUpdatedRevID int64
}

func newFakeClient() *fakeClient {
	return &fakeClient{Calls: map[string]int{}}
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[name]++
}

func (f *fakeClient) calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[name]
}

func (f *fakeClient) SignIn(_ context.Context, username, _ string) (string, error) {
	f.record("SignIn")
	f.mu.Lock()
	f.LastSignInUser = username
	f.mu.Unlock()
	return f.SignInToken, f.SignInErr
}

func (f *fakeClient) SignUp(_ context.Context, _, email, _ string) error {
	f.record("SignUp")
	f.mu.Lock()
	f.LastSignUpEmail = email
	f.mu.Unlock()
	return f.SignUpErr
}

func (f *fakeClient) ListBooks(ctx context.Context, query string) ([]models.Book, error) {
	f.record("ListBooks")
	f.mu.Lock()
	f.LastQuery = query
	fn := f.ListBooksFn
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, query)
	}
	return f.ListBooksRet, f.ListBooksErr
}

func (f *fakeClient) GetBook(_ context.Context, _ int64) (*models.Book, error) {
	f.record("GetBook")
	return f.GetBookRet, f.GetBookErr
}

func (f *fakeClient) ListMyBooks(_ context.Context) ([]models.Book, error) {
	f.record("ListMyBooks")
	return f.MyBooksRet, f.MyBooksErr
}

func (f *fakeClient) CreateBook(_ context.Context, sub models.Submission) (*models.Book, error) {
	f.record("CreateBook")
	f.mu.Lock()
	f.LastSubmission = sub
	f.mu.Unlock()
	return f.CreateBookRet, f.CreateBookErr
}

func (f *fakeClient) UpdateBook(_ context.Context, _ int64, fields models.BookFields) (*models.Book, error) {
	f.record("UpdateBook")
	f.mu.Lock()
	f.LastBookFields = fields
	f.mu.Unlock()
	return f.UpdateBookRet, f.UpdateBookErr
}

func (f *fakeClient) DeleteBook(_ context.Context, id int64) error {
	f.record("DeleteBook")
	f.mu.Lock()
	f.LastDeletedBook = id
	f.mu.Unlock()
	return f.DeleteBookErr
}

func (f *fakeClient) ListReviews(_ context.Context, _ int64) ([]models.Review, error) {
	f.record("ListReviews")
	return f.ListReviewsRet, f.ListReviewsErr
}

func (f *fakeClient) GetReview(_ context.Context, _ int64) (*models.Review, error) {
	f.record("GetReview")
	return f.GetReviewRet, f.GetReviewErr
}

func (f *fakeClient) CreateReview(_ context.Context, _ int64, draft models.ReviewDraft) (*models.Review, error) {
	f.record("CreateReview")
	f.mu.Lock()
	f.LastReviewDraft = draft
	f.mu.Unlock()
	return f.CreateReviewRet, f.CreateReviewErr
}

func (f *fakeClient) UpdateReview(_ context.Context, id int64, draft models.ReviewDraft) (*models.Review, error) {
	f.record("UpdateReview")
	f.mu.Lock()
	f.LastUpdatedRevID = id
	f.LastReviewDraft = draft
	f.mu.Unlock()
	return f.UpdateReviewRet, f.UpdateReviewErr
}

func (f *fakeClient) DeleteReview(_ context.Context, id int64) error {
	f.record("DeleteReview")
	f.mu.Lock()
	f.LastDeletedRev = id
	f.mu.Unlock()
	return f.DeleteReviewErr
}

func (f *fakeClient) ResolveImageURL(ref string) string {
	return ref
}
