package controllers

import (
	"context"
	"fmt"
	"sync"

	"bookreview/internal/client/api"
	"bookreview/internal/client/models"
	"bookreview/internal/client/session"
	"bookreview/internal/common"
	"bookreview/internal/logging"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AuthMode selects which credential set the auth form collects.
type AuthMode string

const (
	AuthModeSignIn AuthMode = "signin"
	AuthModeSignUp AuthMode = "signup"
)

// AuthForm collects credentials and drives sign-in/sign-up. A successful
// sign-in persists the returned token; a successful sign-up returns the
// form to sign-in mode with a confirmation message and stores no token.
type AuthForm struct {
	mu      sync.Mutex
	client  api.Client
	session session.Store
	logger  logging.Logger

	mode     AuthMode
	username string
	email    string
	password string
	busy     bool
	message  string
}

func NewAuthForm(client api.Client, store session.Store, logger logging.Logger) *AuthForm {
	return &AuthForm{client: client, session: store, logger: logger, mode: AuthModeSignIn}
}

func (f *AuthForm) Mode() AuthMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// ToggleMode switches between sign-in and sign-up client-side.
func (f *AuthForm) ToggleMode() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == AuthModeSignIn {
		f.mode = AuthModeSignUp
	} else {
		f.mode = AuthModeSignIn
	}
	f.message = ""
}

// SetCredentials fills the typed fields. Email is ignored in sign-in mode.
func (f *AuthForm) SetCredentials(username, email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.username = username
	f.email = email
	f.password = password
}

// Message returns the last user-facing confirmation, e.g. after sign-up.
func (f *AuthForm) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

func (f *AuthForm) validate(mode AuthMode, username, email, password string) error {
	errs := validation.Errors{
		"username": validation.Validate(username, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}
	if mode == AuthModeSignUp {
		errs["email"] = validation.Validate(email, validation.Required, is.Email)
	}
	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// Submit validates the current fields and issues the call for the current
// mode. Validation failure blocks the network call entirely. The submit is
// disabled (ErrBusy) while its own request is outstanding.
func (f *AuthForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return common.ErrBusy
	}
	f.busy = true
	mode, username, email, password := f.mode, f.username, f.email, f.password
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	if err := f.validate(mode, username, email, password); err != nil {
		return err
	}

	if mode == AuthModeSignUp {
		if err := f.client.SignUp(ctx, username, email, password); err != nil {
			f.logger.Error(ctx, "sign-up failed", "username", username, "error", err)
			return err
		}
		f.mu.Lock()
		f.mode = AuthModeSignIn
		f.message = "Your account is created. Please sign in."
		f.password = ""
		f.mu.Unlock()
		return nil
	}

	token, err := f.client.SignIn(ctx, username, password)
	if err != nil {
		f.logger.Error(ctx, "sign-in failed", "username", username, "error", err)
		return err
	}
	if err := f.session.SetToken(ctx, token); err != nil {
		return err
	}

	f.mu.Lock()
	f.password = ""
	f.message = ""
	f.mu.Unlock()
	return nil
}

// SubmissionForm collects a new book submission: the typed fields plus the
// local path of one picked cover image. Submit packages everything as
// multipart and clears the form on success.
type SubmissionForm struct {
	mu     sync.Mutex
	client api.Client
	logger logging.Logger

	sub  models.Submission
	busy bool
}

func NewSubmissionForm(client api.Client, logger logging.Logger) *SubmissionForm {
	return &SubmissionForm{client: client, logger: logger}
}

func (f *SubmissionForm) SetFields(sub models.Submission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sub = sub
}

// Values returns the in-progress submission.
func (f *SubmissionForm) Values() models.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sub
}

func (f *SubmissionForm) validate(sub models.Submission) error {
	errs := validation.Errors{
		"title":       validation.Validate(sub.Title, validation.Required),
		"author":      validation.Validate(sub.Author, validation.Required),
		"isbn_number": validation.Validate(sub.ISBNNumber, validation.Required),
		"description": validation.Validate(sub.Description, validation.Required),
		"cover_image": validation.Validate(sub.CoverPath, validation.Required),
	}
	if err := errs.Filter(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// Submit validates and uploads the submission. On success the form resets
// to its empty state and the created book is returned so the caller can
// navigate to the list.
func (f *SubmissionForm) Submit(ctx context.Context) (*models.Book, error) {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return nil, common.ErrBusy
	}
	f.busy = true
	sub := f.sub
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.busy = false
		f.mu.Unlock()
	}()

	if err := f.validate(sub); err != nil {
		return nil, err
	}

	book, err := f.client.CreateBook(ctx, sub)
	if err != nil {
		f.logger.Error(ctx, "submission failed", "title", sub.Title, "error", err)
		return nil, err
	}

	f.mu.Lock()
	f.sub = models.Submission{}
	f.mu.Unlock()
	return book, nil
}
