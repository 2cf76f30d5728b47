package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	defaultTimeout = 10 * time.Second

	// detail payloads for some species run to a few hundred KB
	maxBodyBytes = 8 << 20
)

var (
	// ErrNotFound means the upstream answered 404 for the requested resource.
	ErrNotFound = errors.New("pokeapi: not found")
	// ErrTimeout means the upstream did not answer within the client timeout.
	ErrTimeout = errors.New("pokeapi: request timed out")
)

// StatusError carries a non-2xx, non-404 upstream answer.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pokeapi %s returned %d: %s", e.Path, e.StatusCode, e.Body)
}

// Client talks to the read-only PokéAPI. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client with an explicit per-request timeout.
// Zero values fall back to the public API and a 10s timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListPokemon fetches GET /pokemon?limit=&offset= and returns the raw JSON body.
// limit and offset are forwarded verbatim.
func (c *Client) ListPokemon(ctx context.Context, limit, offset string) ([]byte, error) {
	q := url.Values{}
	q.Set("limit", limit)
	q.Set("offset", offset)
	return c.get(ctx, "/pokemon?"+q.Encode())
}

// GetPokemon fetches GET /pokemon/{nameOrID} and returns the raw JSON body.
// The caller is responsible for normalising the identifier.
func (c *Client) GetPokemon(ctx context.Context, nameOrID string) ([]byte, error) {
	return c.get(ctx, "/pokemon/"+url.PathEscape(nameOrID))
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("pokeapi %s: build request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, path)
		}
		return nil, fmt.Errorf("pokeapi %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s", ErrTimeout, path)
		}
		return nil, fmt.Errorf("pokeapi %s: read body: %w", path, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
