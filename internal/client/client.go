// Package client calls a running Trivia API: raw requests for the `api` command and typed
// calls for the terminal quiz player.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/fyyur/internal/projection"
	"github.com/desertthunder/fyyur/internal/shared"
)

// DefaultURL is the Trivia API address used when none is configured.
const DefaultURL = "http://127.0.0.1:5001"

// Client makes HTTP requests against a Trivia API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// Response represents a raw API response with status and body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// Get performs a GET request to the specified path and returns the raw response.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request with the given JSON data and returns the raw response.
func (c *Client) Post(ctx context.Context, path string, data []byte) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, data)
}

// Delete performs a DELETE request to the specified path and returns the raw response.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, data []byte) (*Response, error) {
	fullURL := c.baseURL + path

	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       raw,
	}

	var jsonData any
	if err := json.Unmarshal(raw, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

// decode unmarshals a successful response into v. Non-2xx statuses are [shared.ErrAPIRequest]
// carrying the server's message.
func decode(resp *Response, v any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(resp.Body, &body)
		if body.Message == "" {
			body.Message = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w: %d %s", shared.ErrAPIRequest, resp.StatusCode, body.Message)
	}

	if err := json.Unmarshal(resp.Body, v); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}
	return nil
}

// Categories fetches every category keyed by ID.
func (c *Client) Categories(ctx context.Context) (projection.Categories, error) {
	resp, err := c.Get(ctx, "/categories")
	if err != nil {
		return nil, err
	}

	var body struct {
		Categories projection.Categories `json:"categories"`
	}
	if err := decode(resp, &body); err != nil {
		return nil, err
	}
	if body.Categories == nil {
		body.Categories = projection.Categories{}
	}
	return body.Categories, nil
}

// NextQuestion asks the quiz endpoint for an unseen question in category (0 for all).
// A drained category is [shared.ErrExhausted].
func (c *Client) NextQuestion(ctx context.Context, category int64, previous []int64) (*projection.Question, error) {
	if previous == nil {
		previous = []int64{}
	}

	payload, err := json.Marshal(map[string]any{
		"previous_questions": previous,
		"quiz_category":      map[string]any{"id": category},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.Post(ctx, "/quizzes", payload)
	if err != nil {
		return nil, err
	}

	var body struct {
		Question  *projection.Question `json:"question"`
		Exhausted bool                 `json:"exhausted"`
	}
	if err := decode(resp, &body); err != nil {
		return nil, err
	}

	if body.Question == nil {
		if body.Exhausted {
			return nil, shared.ErrExhausted
		}
		return nil, fmt.Errorf("%w: response carried no question", shared.ErrAPIRequest)
	}
	return body.Question, nil
}

// IsUnavailable reports whether err means the API could not be reached at all.
func IsUnavailable(err error) bool {
	return errors.Is(err, shared.ErrServiceUnavailable)
}
