// Package cli is the interactive surface of the book review client: a REPL
// whose available commands are gated on the presence of a session token,
// mirroring the unauthenticated -> authenticated screen flow of the app.
package cli

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"os"

	"bookreview/internal/client/api"
	"bookreview/internal/client/config"
	"bookreview/internal/client/controllers"
	"bookreview/internal/client/models"
	"bookreview/internal/client/session"
	"bookreview/internal/common"
	"bookreview/internal/logging"
)

type App struct {
	config  *config.Config
	client  api.Client
	session session.Store
	logger  logging.Logger
	reader  *bufio.Reader

	auth      *controllers.AuthForm
	catalogue *controllers.ListController
	mine      *controllers.ListController
	search    *controllers.SearchController
	form      *controllers.SubmissionForm

	// detail is the currently opened book screen, nil when none is open.
	detail       *controllers.DetailController
	detailBookID int64
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	store, err := session.Open(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing session store", "error", err)
		return nil, err
	}

	client := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, store)

	a := &App{
		config:  c,
		client:  client,
		session: store,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}

	a.auth = controllers.NewAuthForm(client, store, logger)
	a.catalogue = controllers.NewListController(func(ctx context.Context) ([]models.Book, error) {
		return client.ListBooks(ctx, "")
	}, logger)
	a.mine = controllers.NewListController(client.ListMyBooks, logger)
	a.search = controllers.NewSearchController(client.ListBooks, logger)
	a.form = controllers.NewSubmissionForm(client, logger)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	printlnFn("Book Review CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	token, err := a.session.Token(context.Background())
	return err == nil && token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "signed-in"
	}
	return "signed-out"
}

// guard inspects an error from a controller. An authentication-required
// condition discards the stale token and drops the REPL back to the
// signed-out command set; other failures only produce a message.
func (a *App) guard(ctx context.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		_ = a.session.Clear(ctx)
		a.detail = nil
		printlnFn("Session expired. Please sign in again.")
	case errors.Is(err, common.ErrNotFound):
		printlnFn("Not found.")
	case errors.Is(err, common.ErrNetwork):
		printlnFn("Network problem. Check the connection and try again.")
	case errors.Is(err, common.ErrServer):
		printlnFn("The server had a problem. Try again later.")
	case errors.Is(err, common.ErrValidation):
		printlnFn("Invalid input:", err.Error())
	default:
		printlnFn("Error:", err.Error())
	}
}
