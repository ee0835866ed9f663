// Package seminarapi is an HTTP client for the seminars API.
package seminarapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"seminarhub/internal/domain"
)

const defaultTimeout = 10 * time.Second

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("seminars api returned status: %d", e.StatusCode)
	}
	return fmt.Sprintf("seminars api returned status: %d: %s", e.StatusCode, e.Message)
}

// Is makes a 404 match domain.ErrNotFound and a 400 match domain.ErrInvalidID.
func (e *StatusError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domain.ErrInvalidID:
		return e.StatusCode == http.StatusBadRequest
	}
	return false
}

// Client talks to a seminars API. It holds no state besides its configuration.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a client for the API rooted at baseURL. A nil client
// gets a default one with a 10s timeout.
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

// ListSeminars fetches every seminar, filtered server-side when query is non-empty.
func (c *Client) ListSeminars(ctx context.Context, query string) ([]*domain.Seminar, error) {
	path := "/seminars"
	if query != "" {
		path += "?" + url.Values{"query": {query}}.Encode()
	}
	var out []*domain.Seminar
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("list seminars: %w", err)
	}
	if out == nil {
		out = []*domain.Seminar{}
	}
	return out, nil
}

func (c *Client) GetSeminar(ctx context.Context, id int64) (*domain.Seminar, error) {
	var out domain.Seminar
	if err := c.do(ctx, http.MethodGet, seminarPath(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get seminar %d: %w", id, err)
	}
	return &out, nil
}

// CreateSeminar posts s and returns the stored record with its assigned id.
func (c *Client) CreateSeminar(ctx context.Context, s *domain.Seminar) (*domain.Seminar, error) {
	var out domain.Seminar
	if err := c.do(ctx, http.MethodPost, "/seminars", s, &out); err != nil {
		return nil, fmt.Errorf("create seminar: %w", err)
	}
	return &out, nil
}

// UpdateSeminar replaces the record with s.ID by s.
func (c *Client) UpdateSeminar(ctx context.Context, s *domain.Seminar) (*domain.Seminar, error) {
	var out domain.Seminar
	if err := c.do(ctx, http.MethodPut, seminarPath(s.ID), s, &out); err != nil {
		return nil, fmt.Errorf("update seminar %d: %w", s.ID, err)
	}
	return &out, nil
}

func (c *Client) DeleteSeminar(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, seminarPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete seminar %d: %w", id, err)
	}
	return nil
}

func seminarPath(id int64) string {
	return "/seminars/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach seminars api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readStatusError(resp)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func readStatusError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err == nil {
		se.Message, se.Code = body.Error, body.Code
	} else {
		se.Message = strings.TrimSpace(string(raw))
	}
	return se
}
