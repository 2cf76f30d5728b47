package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	poke "poke_explorer"
)

const maxResponseBytes = 8 << 20

const msgRequestFailed = "request failed"

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Unauthorized reports whether the server rejected the session.
func (e *APIError) Unauthorized() bool { return e.Status == http.StatusUnauthorized }

// APIClient calls the Poké-Explorer HTTP API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) Register(ctx context.Context, username, password string) (poke.AuthResponse, error) {
	var out poke.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", "", poke.AuthRequest{Username: username, Password: password}, &out)
	return out, err
}

func (c *APIClient) Login(ctx context.Context, username, password string) (poke.AuthResponse, error) {
	var out poke.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", poke.AuthRequest{Username: username, Password: password}, &out)
	return out, err
}

func (c *APIClient) Search(ctx context.Context, token, term string) (Pokemon, error) {
	var out Pokemon
	err := c.do(ctx, http.MethodPost, "/api/search", token, poke.SearchRequest{Term: term}, &out)
	return out, err
}

func (c *APIClient) History(ctx context.Context, token string) ([]poke.HistoryEntry, error) {
	var out []poke.HistoryEntry
	err := c.do(ctx, http.MethodGet, "/api/search/history", token, nil, &out)
	return out, err
}

// List fetches one page of names. Empty limit/offset use the server defaults.
func (c *APIClient) List(ctx context.Context, token, limit, offset string) (PokemonPage, error) {
	q := url.Values{}
	if limit != "" {
		q.Set("limit", limit)
	}
	if offset != "" {
		q.Set("offset", offset)
	}
	path := "/api/pokemon"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out PokemonPage
	err := c.do(ctx, http.MethodGet, path, token, nil, &out)
	return out, err
}

func (c *APIClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: msgRequestFailed}
		var e poke.ErrorResponse
		if json.Unmarshal(data, &e) == nil && e.Message != "" {
			apiErr.Message = e.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
