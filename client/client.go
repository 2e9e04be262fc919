// Package client is the Go client for the bookstore service: a thin HTTP
// SDK plus the in-memory browsing state kept in sync with the server
// through explicit round-trips.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/edenbay/bookstore-service/internal/errs"
	"github.com/edenbay/bookstore-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
}

func New(baseURL string, log *zap.Logger) *Client {
	return &Client{
		log:     log.Named("client"),
		baseURL: baseURL,
		client: &http.Client{
			Timeout: time.Minute,
		},
	}
}

func (c *Client) ListBooks(ctx context.Context) ([]model.Book, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/books/books", http.NoBody)
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := c.do(req, http.StatusOK, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) CreateBook(ctx context.Context, candidate model.BookCreateRequest) (model.Book, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.baseURL+"/api/books/book", candidate)
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := c.do(req, http.StatusCreated, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (c *Client) UpdateBook(ctx context.Context, id string, patch model.BookPatch) (model.Book, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("%s/api/books/book/%s", c.baseURL, id), patch)
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := c.do(req, http.StatusOK, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (c *Client) DeleteBook(ctx context.Context, id string) (model.DeleteBookResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/api/books/book/%s", c.baseURL, id), http.NoBody)
	if err != nil {
		return model.DeleteBookResponse{}, err
	}
	var resp model.DeleteBookResponse
	if err := c.do(req, http.StatusOK, &resp); err != nil {
		return model.DeleteBookResponse{}, err
	}
	return resp, nil
}

func (c *Client) Register(ctx context.Context, candidate model.UserCreateRequest) (model.User, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.baseURL+"/api/auth/register", candidate)
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := c.do(req, http.StatusCreated, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (c *Client) Login(ctx context.Context, credentials model.AuthRequest) (model.AuthResponse, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, c.baseURL+"/api/auth/login", credentials)
	if err != nil {
		return model.AuthResponse{}, err
	}
	var resp model.AuthResponse
	if err := c.do(req, http.StatusOK, &resp); err != nil {
		return model.AuthResponse{}, err
	}
	return resp, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return errs.ErrNotFound
		case http.StatusUnauthorized:
			return errs.ErrInvalidCredentials
		case http.StatusConflict:
			return errs.ErrDuplicateEmail
		}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
			return errors.Errorf("unexpected status %d", resp.StatusCode)
		}
		return errors.Errorf("unexpected status %d: %s", resp.StatusCode, body.Message)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
