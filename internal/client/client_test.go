package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/fyyur/internal/shared"
	tu "github.com/desertthunder/fyyur/internal/testing"
)

func TestClient(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			c := New("http://example.com/", customClient)

			if c.baseURL != "http://example.com" {
				t.Errorf("expected trailing slash trimmed, got %s", c.baseURL)
			}
			if c.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			c := New("", nil)

			if c.baseURL != DefaultURL {
				t.Errorf("expected default baseURL %q, got %s", DefaultURL, c.baseURL)
			}
			if c.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("Successful Request With JSON Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				if r.URL.Path != "/categories" {
					t.Errorf("expected path '/categories', got %s", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			}))
			defer server.Close()

			resp, err := New(server.URL, nil).Get(context.Background(), "/categories")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Errorf("expected status 200, got %d", resp.StatusCode)
			}
			if !resp.IsJSON || resp.JSONData == nil {
				t.Error("expected JSON response to be detected")
			}
		})

		t.Run("Successful Request With Non-JSON Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.Write([]byte("plain text response"))
			}))
			defer server.Close()

			resp, err := New(server.URL, nil).Get(context.Background(), "/")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.IsJSON || resp.JSONData != nil {
				t.Error("expected response to not be JSON")
			}
			if string(resp.Body) != "plain text response" {
				t.Errorf("expected body 'plain text response', got %s", string(resp.Body))
			}
		})

		t.Run("Failed Request Creation", func(t *testing.T) {
			_, err := New("http://example.com", nil).Get(context.Background(), "/test\x00invalid")
			if err == nil || !strings.Contains(err.Error(), "failed to create request") {
				t.Errorf("expected 'failed to create request' error, got %v", err)
			}
		})

		t.Run("Failed HTTP Request", func(t *testing.T) {
			client := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection failed"))}

			_, err := New("http://example.com", client).Get(context.Background(), "/test")
			if err == nil || !strings.Contains(err.Error(), "request failed") {
				t.Errorf("expected 'request failed' error, got %v", err)
			}
			if !IsUnavailable(err) {
				t.Error("expected transport failure to count as unavailable")
			}
		})

		t.Run("Failed Response Body Read", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(&http.Response{
					StatusCode: http.StatusOK,
					Body:       &tu.FCloser{},
					Header:     http.Header{},
				}, nil),
			}

			_, err := New("http://example.com", client).Get(context.Background(), "/test")
			if err == nil || !strings.Contains(err.Error(), "failed to read response") {
				t.Errorf("expected 'failed to read response' error, got %v", err)
			}
		})

		t.Run("With Canceled Context", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			if _, err := New(server.URL, nil).Get(ctx, "/test"); err == nil {
				t.Error("expected error for canceled context")
			}
		})
	})

	t.Run("Post", func(t *testing.T) {
		t.Run("Sends JSON Body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.Header.Get("Content-Type") != "application/json" {
					t.Errorf("expected Content-Type 'application/json', got %s", r.Header.Get("Content-Type"))
				}

				body, _ := io.ReadAll(r.Body)
				var data map[string]string
				if err := json.Unmarshal(body, &data); err != nil {
					t.Errorf("failed to unmarshal request body: %v", err)
				}
				if data["searchTerm"] != "title" {
					t.Errorf("expected searchTerm 'title', got %v", data)
				}

				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"success": true}`))
			}))
			defer server.Close()

			resp, err := New(server.URL, nil).Post(context.Background(), "/questions", []byte(`{"searchTerm":"title"}`))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusCreated {
				t.Errorf("expected status 201, got %d", resp.StatusCode)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Errorf("expected DELETE method, got %s", r.Method)
			}
			if r.URL.Path != "/questions/4" {
				t.Errorf("expected path '/questions/4', got %s", r.URL.Path)
			}
			w.Write([]byte(`{"success": true, "deleted": 4}`))
		}))
		defer server.Close()

		resp, err := New(server.URL, nil).Delete(context.Background(), "/questions/4")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if data, ok := resp.JSONData.(map[string]any); !ok || data["deleted"] != float64(4) {
			t.Errorf("expected deleted 4, got %v", resp.JSONData)
		}
	})

	t.Run("Categories", func(t *testing.T) {
		t.Run("Decodes Map Keyed By ID", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success": true, "categories": {"1": "Science", "2": "Art"}}`))
			}))
			defer server.Close()

			categories, err := New(server.URL, nil).Categories(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(categories) != 2 || categories[1] != "Science" || categories[2] != "Art" {
				t.Errorf("unexpected categories: %v", categories)
			}
		})

		t.Run("Error Status Carries Message", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"success": false, "error": 404, "message": "resource not found"}`))
			}))
			defer server.Close()

			_, err := New(server.URL, nil).Categories(context.Background())
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Fatalf("expected ErrAPIRequest, got %v", err)
			}
			if !strings.Contains(err.Error(), "resource not found") {
				t.Errorf("expected server message in error, got %v", err)
			}
			if IsUnavailable(err) {
				t.Error("expected HTTP error to not count as unavailable")
			}
		})

		t.Run("Malformed Body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			}))
			defer server.Close()

			if _, err := New(server.URL, nil).Categories(context.Background()); !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("NextQuestion", func(t *testing.T) {
		t.Run("Sends Previous Questions And Category", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/quizzes" {
					t.Errorf("expected path '/quizzes', got %s", r.URL.Path)
				}

				var req struct {
					Previous []int64 `json:"previous_questions"`
					Category struct {
						ID int64 `json:"id"`
					} `json:"quiz_category"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("failed to decode request: %v", err)
				}
				if len(req.Previous) != 2 || req.Category.ID != 3 {
					t.Errorf("unexpected request: %+v", req)
				}

				w.Write([]byte(`{"success": true, "question": {"id": 9, "question": "Q?", "answer": "A", "category": 3, "difficulty": 2}}`))
			}))
			defer server.Close()

			q, err := New(server.URL, nil).NextQuestion(context.Background(), 3, []int64{1, 2})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if q.ID != 9 || q.Answer != "A" || q.Category != 3 {
				t.Errorf("unexpected question: %+v", q)
			}
		})

		t.Run("Nil Previous Is Sent As Empty List", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				if !strings.Contains(string(body), `"previous_questions":[]`) {
					t.Errorf("expected empty list, got %s", body)
				}
				w.Write([]byte(`{"success": true, "question": {"id": 1}}`))
			}))
			defer server.Close()

			if _, err := New(server.URL, nil).NextQuestion(context.Background(), 0, nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Exhausted", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success": true, "question": null, "exhausted": true}`))
			}))
			defer server.Close()

			_, err := New(server.URL, nil).NextQuestion(context.Background(), 0, []int64{1})
			if !errors.Is(err, shared.ErrExhausted) {
				t.Errorf("expected ErrExhausted, got %v", err)
			}
		})

		t.Run("Missing Question Without Exhausted Flag", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success": true}`))
			}))
			defer server.Close()

			_, err := New(server.URL, nil).NextQuestion(context.Background(), 0, nil)
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("Unknown Category", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(`{"success": false, "error": 422, "message": "unprocessable"}`))
			}))
			defer server.Close()

			_, err := New(server.URL, nil).NextQuestion(context.Background(), 99, nil)
			if !errors.Is(err, shared.ErrAPIRequest) || !strings.Contains(err.Error(), "422") {
				t.Errorf("expected 422 ErrAPIRequest, got %v", err)
			}
		})
	})
}
