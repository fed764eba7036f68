package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	Browse(ctx context.Context) error
	More(ctx context.Context) error
	RefreshList(ctx context.Context) error
	Search(ctx context.Context) error
	Mine(ctx context.Context) error
	Show(ctx context.Context) error
	AddReview(ctx context.Context) error
	EditReview(ctx context.Context) error
	DeleteReview(ctx context.Context) error
	AddBook(ctx context.Context) error
	EditBook(ctx context.Context) error
	DeleteBook(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Signed out, only account commands are reachable:
//
//	signin | signup | help | exit
//
// Signed in, the browsing commands open up:
//
//	books      - load and show the catalogue
//	more       - widen the visible window (no network call)
//	refresh    - re-fetch the catalogue
//	search     - interactive search prompt
//	mine       - the current user's submissions
//	show       - open one book with its reviews
//	review     - add a review to the open book
//	editreview - edit one of the open book's reviews
//	delreview  - delete a review (asks for confirmation)
//	add        - submit a new book
//	editbook   - edit the open book
//	delbook    - delete the open book (asks for confirmation)
//	logout     - discard the session token
//
// Command handlers report their own errors; the loop stays resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("br> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: signin, signup, exit")
			case "signin":
				_ = a.SignIn(ctx)
			case "signup":
				_ = a.SignUp(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Please sign in first. Available commands: signin, signup, exit")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: books, more, refresh, search, mine, show, review, editreview, delreview, add, editbook, delbook, logout, exit")

		case "b", "books":
			_ = a.Browse(ctx)

		case "more":
			_ = a.More(ctx)

		case "refresh":
			_ = a.RefreshList(ctx)

		case "search":
			_ = a.Search(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "show":
			_ = a.Show(ctx)

		case "review":
			_ = a.AddReview(ctx)

		case "editreview":
			_ = a.EditReview(ctx)

		case "delreview":
			_ = a.DeleteReview(ctx)

		case "add":
			_ = a.AddBook(ctx)

		case "editbook":
			_ = a.EditBook(ctx)

		case "delbook":
			_ = a.DeleteBook(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
