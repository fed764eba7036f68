package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookreview/internal/client/models"
	"bookreview/internal/client/session"
	"bookreview/internal/common"
)

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	session    session.Store
}

// NewHTTPClient builds a client against baseURL (the server origin, no
// trailing slash required). All authenticated calls read the token from
// store before each request.
func NewHTTPClient(baseURL string, timeout time.Duration, store session.Store) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    store,
	}
}

// requireToken reads the persisted token. An absent token aborts the call
// before any request is issued.
func (c *HTTPClient) requireToken(ctx context.Context) (string, error) {
	token, err := c.session.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("session read error: %w", err)
	}
	if token == "" {
		return "", common.ErrUnauthenticated
	}
	return token, nil
}

// do sends the request and maps the outcome into the failure taxonomy:
// transport failure -> ErrNetwork, 401 -> ErrUnauthenticated,
// 404 -> ErrNotFound, other 4xx -> plain client error, 5xx -> ErrServer.
func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		resp.Body.Close()
		return nil, common.ErrUnauthenticated
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, common.ErrNotFound
	case resp.StatusCode >= 500:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: status %d", common.ErrServer, resp.StatusCode)
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("request rejected: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp, nil
}

// doJSON issues a request with an optional JSON body and decodes the
// response into out (when out is non-nil). token may be empty for the
// unauthenticated auth endpoints.
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", common.ErrServer, err)
	}
	return nil
}

type signInResponse struct {
	Data struct {
		Access string `json:"access"`
	} `json:"data"`
	Message string `json:"message"`
}

func (c *HTTPClient) SignIn(ctx context.Context, username, password string) (string, error) {
	payload := map[string]string{"username": username, "password": password}

	var resp signInResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signin/", "", payload, &resp); err != nil {
		return "", err
	}
	if resp.Data.Access == "" {
		return "", fmt.Errorf("%w: no access token in response", common.ErrServer)
	}
	return resp.Data.Access, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, username, email, password string) error {
	payload := map[string]string{"username": username, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/auth/signup/", "", payload, nil)
}

func (c *HTTPClient) ListBooks(ctx context.Context, query string) ([]models.Book, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	path := "/books/"
	if query != "" {
		path += "?query=" + url.QueryEscape(query)
	}

	var books []models.Book
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var book models.Book
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/books/%d/", id), token, nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *HTTPClient) ListMyBooks(ctx context.Context) ([]models.Book, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var books []models.Book
	if err := c.doJSON(ctx, http.MethodGet, "/user/books/", token, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) CreateBook(ctx context.Context, sub models.Submission) (*models.Book, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       sub.Title,
		"isbn_number": sub.ISBNNumber,
		"author":      sub.Author,
		"description": sub.Description,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	if sub.CoverPath != "" {
		f, err := os.Open(sub.CoverPath)
		if err != nil {
			return nil, fmt.Errorf("opening cover image: %w", err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("cover_image", filepath.Base(sub.CoverPath))
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/books/", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var book models.Book
	if err := json.NewDecoder(resp.Body).Decode(&book); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", common.ErrServer, err)
	}
	return &book, nil
}

func (c *HTTPClient) UpdateBook(ctx context.Context, id int64, fields models.BookFields) (*models.Book, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var book models.Book
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/books/%d/", id), token, fields, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *HTTPClient) DeleteBook(ctx context.Context, id int64) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/books/%d/", id), token, nil, nil)
}

func (c *HTTPClient) ListReviews(ctx context.Context, bookID int64) ([]models.Review, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/books/%d/reviews/", bookID), token, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *HTTPClient) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var review models.Review
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/reviews/%d/", id), token, nil, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, bookID int64, draft models.ReviewDraft) (*models.Review, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var review models.Review
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/books/%d/reviews/", bookID), token, draft, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *HTTPClient) UpdateReview(ctx context.Context, id int64, draft models.ReviewDraft) (*models.Review, error) {
	token, err := c.requireToken(ctx)
	if err != nil {
		return nil, err
	}

	var review models.Review
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/reviews/%d/", id), token, draft, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, id int64) error {
	token, err := c.requireToken(ctx)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d/", id), token, nil, nil)
}

// ResolveImageURL resolves refs like "/media/book_covers/x.jpg" against the
// server origin. Absolute URLs pass through unchanged.
func (c *HTTPClient) ResolveImageURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return c.baseURL + ref
}
