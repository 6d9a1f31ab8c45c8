package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestSnippet(t *testing.T) {
	testCases := []struct {
		input    string
		max      int
		expected string
	}{
		{"short text", 100, "short text"},
		{"", 100, ""},
		{"  trimmed  ", 100, "trimmed"},
		{"long text that should be truncated", 10, "long text …"},
	}

	for _, tc := range testCases {
		result := Snippet([]byte(tc.input), tc.max)
		if result != tc.expected {
			t.Errorf("Snippet(%q, %d) = %q, want %q", tc.input, tc.max, result, tc.expected)
		}
	}
}

func TestHTTPError(t *testing.T) {
	err := &HTTPError{
		Method:     "GET",
		URL:        "https://example.com",
		StatusCode: 404,
		Body:       []byte("Not Found"),
	}

	expected := "http error: GET https://example.com status=404 body=Not Found"
	if err.Error() != expected {
		t.Errorf("HTTPError.Error() = %q, want %q", err.Error(), expected)
	}
}

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("term"); got != "fa" {
			t.Errorf("Expected query term=fa, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Expected Accept header application/json, got %q", got)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out map[string]any
	q := url.Values{}
	q.Set("term", "fa")
	if err := GetJSON(context.Background(), srv.Client(), srv.URL, q, &out); err != nil {
		t.Fatalf("GetJSON returned error: %v", err)
	}
	if out["ok"] != true {
		t.Errorf("Expected decoded body {'ok': true}, got %v", out)
	}
}

func TestGetNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Get(context.Background(), srv.Client(), srv.URL, nil)
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}

	var herr *HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("Expected *HTTPError, got %T: %v", err, err)
	}
	if herr.StatusCode != 500 {
		t.Errorf("Expected status 500, got %d", herr.StatusCode)
	}
	if !strings.Contains(herr.Error(), "nope") {
		t.Errorf("Expected error to carry body snippet, got %q", herr.Error())
	}
}

func TestGetJSONParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>cloudflare</html>"))
	}))
	defer srv.Close()

	var out any
	err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, &out)
	if err == nil {
		t.Fatal("Expected error for non-JSON body")
	}
	if !strings.Contains(err.Error(), "json parse error") {
		t.Errorf("Expected json parse error, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "cloudflare") {
		t.Errorf("Expected error to carry body snippet, got %q", err.Error())
	}
}

func TestGetBrotliResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept-Encoding"); got != "br" {
			t.Errorf("Expected Accept-Encoding br, got %q", got)
		}
		w.Header().Set("Content-Encoding", "br")
		bw := brotli.NewWriter(w)
		bw.Write([]byte(`{"compressed":true}`))
		bw.Close()
	}))
	defer srv.Close()

	var out map[string]any
	if err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, &out); err != nil {
		t.Fatalf("GetJSON returned error: %v", err)
	}
	if out["compressed"] != true {
		t.Errorf("Expected decoded brotli body, got %v", out)
	}
}

func TestGetInvalidURL(t *testing.T) {
	if _, err := Get(context.Background(), http.DefaultClient, "://bad", nil); err == nil {
		t.Error("Expected error for invalid url")
	}
}
