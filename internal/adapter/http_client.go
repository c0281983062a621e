package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"bookshelf/models"

	"github.com/go-resty/resty/v2"
)

// HTTPAPIClientConfig configures the REST implementation of [APIClient].
type HTTPAPIClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient creates an [APIClient] talking JSON over HTTP to the
// bookshelf server. Zero-value config fields fall back to sensible defaults.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Signup(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	return h.authenticate(ctx, "/auth/signup", credentials)
}

func (h *httpAPIClient) Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error) {
	return h.authenticate(ctx, "/auth/login", credentials)
}

// authenticate posts credentials to the given auth endpoint and stores the
// access token from the response body for subsequent requests.
func (h *httpAPIClient) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(path)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return models.TokenResponse{}, fmt.Errorf("auth response contains no access token")
	}

	h.SetToken(tr.AccessToken)
	return tr, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}
	return user, nil
}

func (h *httpAPIClient) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}
	return user, nil
}

func (h *httpAPIClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	resp, err := h.authedRequest(ctx).Get("/books")
	if err != nil {
		return nil, fmt.Errorf("list books request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var books []models.Book
	if err = json.Unmarshal(resp.Body(), &books); err != nil {
		return nil, fmt.Errorf("decode books response: %w", err)
	}
	return books, nil
}

func (h *httpAPIClient) GetBook(ctx context.Context, bookID int64) (*models.Book, error) {
	resp, err := h.authedRequest(ctx).Get("/books/" + strconv.FormatInt(bookID, 10))
	if err != nil {
		return nil, fmt.Errorf("get book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// the server reports an absent book as a JSON null with status 200
	var book *models.Book
	if err = json.Unmarshal(resp.Body(), &book); err != nil {
		return nil, fmt.Errorf("decode book response: %w", err)
	}
	return book, nil
}

func (h *httpAPIClient) CreateBook(ctx context.Context, create models.BookCreate) (models.Book, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		Post("/books")
	if err != nil {
		return models.Book{}, fmt.Errorf("create book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	var book models.Book
	if err = json.Unmarshal(resp.Body(), &book); err != nil {
		return models.Book{}, fmt.Errorf("decode book response: %w", err)
	}
	return book, nil
}

func (h *httpAPIClient) EditBook(ctx context.Context, bookID int64, update models.BookUpdate) (models.Book, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Patch("/books/" + strconv.FormatInt(bookID, 10))
	if err != nil {
		return models.Book{}, fmt.Errorf("edit book request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Book{}, err
	}

	var book models.Book
	if err = json.Unmarshal(resp.Body(), &book); err != nil {
		return models.Book{}, fmt.Errorf("decode book response: %w", err)
	}
	return book, nil
}

func (h *httpAPIClient) DeleteBook(ctx context.Context, bookID int64) error {
	resp, err := h.authedRequest(ctx).Delete("/books/" + strconv.FormatInt(bookID, 10))
	if err != nil {
		return fmt.Errorf("delete book request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
